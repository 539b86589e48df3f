// Package sink drives a simulation headlessly and fans its frames out to
// render sinks.
package sink

import (
	"errors"
	"fmt"

	"emergent-ca/internal/core"
)

// Run starts every sink, steps sim exactly ticks times handing each frame to
// the sinks in order, then stops every started sink. A failing sink ends the
// loop early; sinks are stopped either way.
func Run(sim core.Sim, ticks int, sinks ...core.Sink) error {
	started := make([]core.Sink, 0, len(sinks))
	var runErr error
	for _, s := range sinks {
		if err := s.Start(); err != nil {
			runErr = fmt.Errorf("start sink: %w", err)
			break
		}
		started = append(started, s)
	}

	if runErr == nil {
	loop:
		for i := 0; i < ticks; i++ {
			sim.Step()
			f := sim.Frame()
			for _, s := range started {
				if err := s.OnFrame(f); err != nil {
					runErr = fmt.Errorf("tick %d: %w", f.Tick, err)
					break loop
				}
			}
		}
	}

	errs := []error{runErr}
	for _, s := range started {
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop sink: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Multi fans frames out to several sinks as one.
type Multi []core.Sink

// Start starts each sink in order, stopping at the first error.
func (m Multi) Start() error {
	for _, s := range m {
		if err := s.Start(); err != nil {
			return err
		}
	}
	return nil
}

// OnFrame forwards f to each sink in order.
func (m Multi) OnFrame(f core.Frame) error {
	for _, s := range m {
		if err := s.OnFrame(f); err != nil {
			return err
		}
	}
	return nil
}

// Stop stops every sink and joins their errors.
func (m Multi) Stop() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Stop())
	}
	return errors.Join(errs...)
}
