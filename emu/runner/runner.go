// Package runner implements the host loop that drives the interpreter at a
// fixed instruction rate and presents the display on change.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/config"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/log"
)

// Frontend is a host surface that supplies key input and shows frames.
type Frontend interface {
	// Poll updates key from the input device and reports whether the
	// user asked to quit.
	Poll(key *cpu.HeldKey) bool
	// Present shows a frame of cpu.FrameSize RGBA bytes.
	Present(frame []byte) error
}

// Beeper plays a tone while the sound timer is running.
type Beeper interface {
	SetActive(active bool)
}

type Runner struct {
	emu      *cpu.EMU
	frontend Frontend
	beeper   Beeper
	logger   *log.Logger

	key      cpu.HeldKey
	timer    *cpu.Timer
	frame    []byte
	ips      int
	refresh  int
	budget   int // instructions owed times refresh, carried between frames
	interval time.Duration
	halted   bool
}

// New returns a runner for emu. beeper may be nil.
func New(logger *log.Logger, cfg config.Config, emu *cpu.EMU, frontend Frontend, beeper Beeper) *Runner {
	return &Runner{
		emu:      emu,
		frontend: frontend,
		beeper:   beeper,
		logger:   logger,
		timer:    cpu.NewTimer(),
		frame:    make([]byte, cpu.FrameSize),
		ips:      cfg.IPS,
		refresh:  cfg.Refresh,
		interval: time.Second / time.Duration(cfg.Refresh),
	}
}

// Run executes frames at the configured refresh rate until the frontend
// quits, the context is cancelled or the machine faults.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.present(); err != nil {
		return err
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer r.setBeep(false)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Emulation cancelled")
			return nil

		case <-ticker.C:
			quit, err := r.Frame()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// Frame polls input, runs one frame worth of instructions and presents the
// display if it changed. It reports whether the frontend asked to quit.
func (r *Runner) Frame() (bool, error) {
	if r.frontend.Poll(&r.key) {
		return true, nil
	}
	if r.halted {
		return false, nil
	}

	changed := false
	for range r.frameInstructions() {
		drawn, err := r.emu.Step(&r.key, r.timer)
		if err != nil {
			return false, fmt.Errorf("running machine: %w", err)
		}
		changed = changed || drawn

		if r.emu.Halted() {
			r.halted = true
			r.setBeep(false)
			r.logger.Info("Machine halted", log.Hex("pc", r.emu.PC()))
			break
		}
	}

	if !r.halted {
		r.setBeep(r.emu.SoundTimer() > 0)
	}

	if changed {
		if err := r.present(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// frameInstructions returns how many instructions the next frame runs. The
// division remainder is carried so that refresh frames add up to ips.
func (r *Runner) frameInstructions() int {
	r.budget += r.ips
	n := r.budget / r.refresh
	r.budget %= r.refresh
	return n
}

func (r *Runner) present() error {
	r.emu.RenderInto(r.frame)
	if err := r.frontend.Present(r.frame); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	return nil
}

func (r *Runner) setBeep(active bool) {
	if r.beeper != nil {
		r.beeper.SetActive(active)
	}
}
