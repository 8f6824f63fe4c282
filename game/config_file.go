package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// envPrefix namespaces the environment overrides
const envPrefix = "BALLFIELD_"

// LoadConfig reads a TOML file over DefaultConfig. Keys the file sets that
// Config does not know are an error, so typos fail loudly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the effective configuration: defaults, then the TOML file at
// path if set, then BALLFIELD_* entries from the env file at envPath if set,
// then BALLFIELD_* variables of the process environment.
func Load(path, envPath string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return Config{}, err
		}
	}

	env := make(map[string]string)
	if envPath != "" {
		fileEnv, err := ReadEnvFile(envPath)
		if err != nil {
			return Config{}, err
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}

	if err := ApplyOverrides(&cfg, env); err != nil {
		return Config{}, fmt.Errorf("failed to apply overrides: %w", err)
	}
	return cfg, nil
}

// ReadEnvFile parses a KEY=VALUE file without touching the process environment
func ReadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return env, nil
}

// ApplyOverrides applies BALLFIELD_* entries from env to cfg and revalidates it
func ApplyOverrides(cfg *Config, env map[string]string) error {
	ints := map[string]*int{
		"BASE_BALLS":    &cfg.BaseBallCount,
		"BALL_STEP":     &cfg.BallCountStep,
		"SCREEN_WIDTH":  &cfg.ScreenWidth,
		"SCREEN_HEIGHT": &cfg.ScreenHeight,
	}
	for name, dst := range ints {
		raw, ok := env[envPrefix+name]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = v
	}

	if raw, ok := env[envPrefix+"SEED"]; ok {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		cfg.Seed = v
	}
	if raw, ok := env[envPrefix+"COOLDOWN"]; ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("%sCOOLDOWN: %w", envPrefix, err)
		}
		cfg.RestartCooldown = v
	}

	return cfg.Validate()
}
