package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

// ErrProfilerBusy is returned when a capture is running or cooling down
var ErrProfilerBusy = errors.New("profiler busy")

// Profiler captures a CPU profile when frames keep running over budget
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	clock           Clock

	// Frames slower than budget for patience frames in a row trigger a capture
	budget   time.Duration
	patience int
	slow     int

	capture func(path string, d time.Duration) error
}

// NewProfiler creates a profiler writing into dir, judging frames against budget
func NewProfiler(dir string, budget time.Duration, clock Clock) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		clock:           clock,
		budget:          budget,
		patience:        30,
		capture:         captureCPUProfile,
	}, nil
}

// ObserveFrame records how long one frame took and starts a capture once the
// slow streak reaches the patience. It reports whether a capture started.
func (p *Profiler) ObserveFrame(d time.Duration) bool {
	p.mu.Lock()
	if d <= p.budget {
		p.slow = 0
		p.mu.Unlock()
		return false
	}
	p.slow++
	trigger := p.slow >= p.patience
	if trigger {
		p.slow = 0
	}
	p.mu.Unlock()

	if !trigger {
		return false
	}
	if err := p.CaptureProfile("slow-frames"); err != nil {
		return false
	}
	return true
}

// CaptureProfile starts a CPU profile capture in the background
func (p *Profiler) CaptureProfile(reason string) error {
	path, err := p.begin(reason)
	if err != nil {
		return err
	}
	go func() {
		if err := p.run(path, p.captureDuration); err != nil {
			log.Printf("Error capturing CPU profile: %v", err)
		}
	}()
	return nil
}

// CaptureProfileSync captures a CPU profile for duration and blocks until it is written
func (p *Profiler) CaptureProfileSync(reason string, duration time.Duration) (string, error) {
	path, err := p.begin(reason)
	if err != nil {
		return "", err
	}
	return path, p.run(path, duration)
}

// begin claims the profiler and names the output file
func (p *Profiler) begin(reason string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	if p.isProfiling {
		return "", fmt.Errorf("%w: already profiling", ErrProfilerBusy)
	}
	if !p.lastCaptureTime.IsZero() && now.Sub(p.lastCaptureTime) < p.captureCooldown {
		return "", fmt.Errorf("%w: last capture was %v ago", ErrProfilerBusy, now.Sub(p.lastCaptureTime))
	}

	p.isProfiling = true
	p.lastCaptureTime = now
	name := fmt.Sprintf("%s-%s.cpu.prof", reason, now.Format("20060102-150405"))
	return filepath.Join(p.profilesDir, name), nil
}

func (p *Profiler) run(path string, d time.Duration) error {
	defer func() {
		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()

	if err := p.capture(path, d); err != nil {
		return err
	}
	logProfileSummary(path)
	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func captureCPUProfile(path string, d time.Duration) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(d)
	pprof.StopCPUProfile()
	return nil
}

func logProfileSummary(path string) {
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("Warning: could not stat profile: %v", err)
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("CPU profile saved to %s (%.2f KB); view with: go tool pprof -http=:8080 %s", path, float64(info.Size())/1024, path)
	log.Printf("Memory at capture: alloc=%d KB sys=%d KB gc=%d heap objects=%d", m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
