package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ballfield/audio"
	"ballfield/game"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	envPath := flag.String("env", "", "path to a .env file with BALLFIELD_* overrides")
	seed := flag.Int64("seed", 0, "random seed; 0 keeps the configured one")
	mute := flag.Bool("mute", false, "start with sound muted")
	verbose := flag.Bool("v", false, "log ball and phase events")
	profileDir := flag.String("profile", "", "capture CPU profiles into this directory when frames run slow")
	flag.Parse()

	config, err := game.Load(*configPath, *envPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	log.Printf("Seed: %d", config.Seed)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)

	// Effects draw from their own stream so they never shift the game's
	fx := rand.New(rand.NewSource(time.Now().UnixNano()))
	sparks := NewSparkParticleSystem(fx)

	opts := []game.Option{game.WithObserver(sound), game.WithObserver(sparks)}
	if *verbose {
		opts = append(opts, game.WithObserver(game.NewLogObserver(nil)))
	}
	g, err := game.NewGame(config, opts...)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	app, err := newApp(g, sound, sparks, fx)
	if err != nil {
		log.Fatal(err)
	}
	if *profileDir != "" {
		if app.profiler, err = game.NewProfiler(*profileDir, slowFrameBudget, game.SystemClock); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil {
		sound.Cleanup()
		log.Fatal(err)
	}
}
