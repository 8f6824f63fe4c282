// Command termballs plays the ball field in a terminal
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"ballfield/audio"
	"ballfield/game"
)

const (
	tickInterval = 16 * time.Millisecond // ~60 FPS
	maxDeltaTime = 0.1
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	envPath := flag.String("env", "", "path to a .env file with BALLFIELD_* overrides")
	seed := flag.Int64("seed", 0, "random seed; 0 keeps the configured one")
	mute := flag.Bool("mute", false, "start with sound muted")
	verbose := flag.Bool("v", false, "log ball and phase events")
	logPath := flag.String("log", "", "write logs to this file; the terminal is busy drawing")
	flag.Parse()

	logFile, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	config, err := game.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	if err := run(config, *mute, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// setupLogging points the standard logger at path, or discards logs without one
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func run(config game.Config, mute, verbose bool) error {
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(mute)

	opts := []game.Option{game.WithObserver(sound)}
	if verbose {
		opts = append(opts, game.WithObserver(game.NewLogObserver(nil)))
	}
	g, err := game.NewGame(config, opts...)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return loop(screen, g, sound)
}

func loop(screen tcell.Screen, g *game.Game, sound *audio.SoundManager) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	keys := newHoldCollector(holdWindow)
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
					sound.SetMuted(!sound.Muted())
					continue
				}
				if in, ok := mapKey(ev); ok {
					keys.Press(in, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxDeltaTime)
			last = now

			g.SetInput(keys.Held(now))
			if err := g.Update(dt); err != nil {
				return err
			}
			draw(screen, g.Snapshot(), sound.Muted())
		}
	}
}
