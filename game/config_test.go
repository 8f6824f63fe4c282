package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseBallCount = 3
	cfg.BallSides = 2
	cfg.MinSpawnRadius = 1.5

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidBallCount) {
		t.Errorf("err = %v, want ErrInvalidBallCount", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateBaseBallCount(t *testing.T) {
	for _, n := range []int{-4, 0, 1, 5} {
		cfg := DefaultConfig()
		cfg.BaseBallCount = n
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidBallCount) {
			t.Errorf("base %d: err = %v", n, err)
		}
	}
	cfg := DefaultConfig()
	cfg.BaseBallCount = 8
	if err := cfg.Validate(); err != nil {
		t.Errorf("base 8: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, "ballfield.toml", `
base_ball_count = 4
restart_cooldown = 1.5
seed = 99
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseBallCount != 4 || cfg.RestartCooldown != 1.5 || cfg.Seed != 99 {
		t.Errorf("loaded %+v", cfg)
	}
	if cfg.BallSpeedDivisor != DefaultConfig().BallSpeedDivisor {
		t.Errorf("unset key lost its default: %v", cfg.BallSpeedDivisor)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "ballfield.toml", "base_ball_count = 2\nbal_scale = 0.1\n")
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "ballfield.toml", "ball_count_step = 3\n")
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyOverridesFromEnvFile(t *testing.T) {
	path := writeFile(t, ".env", `
BALLFIELD_SEED=7
BALLFIELD_BASE_BALLS=6
BALLFIELD_COOLDOWN=0.5
UNRELATED=x
`)
	env, err := ReadEnvFile(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := ApplyOverrides(&cfg, env); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 7 || cfg.BaseBallCount != 6 || cfg.RestartCooldown != 0.5 {
		t.Errorf("overrides gave %+v", cfg)
	}
}

func TestApplyOverridesErrors(t *testing.T) {
	tests := []map[string]string{
		{"BALLFIELD_SEED": "seven"},
		{"BALLFIELD_COOLDOWN": "soon"},
		{"BALLFIELD_SCREEN_WIDTH": "wide"},
		{"BALLFIELD_BASE_BALLS": "3"},
	}
	for _, env := range tests {
		cfg := DefaultConfig()
		if err := ApplyOverrides(&cfg, env); err == nil {
			t.Errorf("%v: expected error", env)
		}
	}
}

func TestLoadLayersFileEnvFileAndEnvironment(t *testing.T) {
	path := writeFile(t, "ballfield.toml", "base_ball_count = 4\nseed = 1\n")
	envPath := writeFile(t, ".env", "BALLFIELD_SEED=2\nBALLFIELD_COOLDOWN=3\n")
	t.Setenv("BALLFIELD_COOLDOWN", "0.25")

	cfg, err := Load(path, envPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseBallCount != 4 || cfg.Seed != 2 || cfg.RestartCooldown != 0.25 {
		t.Errorf("layered config = %+v", cfg)
	}
}

func TestLoadWithoutSources(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BallSides != DefaultConfig().BallSides {
		t.Errorf("sides = %d", cfg.BallSides)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing env file")
	}
}
