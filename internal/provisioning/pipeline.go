package provisioning

import (
	"fmt"
	"time"
)

// Phase defines the interface for a bring-up phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the logic for this phase.
	Provision(ctx *Context) error
}

// RunPhases executes all phases sequentially. A phase only starts after the
// previous one returned successfully; the first failure stops the run.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Logger.Info("Starting bring-up", "phases", len(phases), "nodes", ctx.Topology.Size())

	for i, phase := range phases {
		phaseStart := time.Now()
		log := ctx.Logger.WithValues("phase", phase.Name(), "step", fmt.Sprintf("%d/%d", i+1, len(phases)))

		log.Info("Phase starting")

		err := phase.Provision(ctx)
		duration := time.Since(phaseStart)
		ctx.State.Phases = append(ctx.State.Phases, PhaseTiming{
			Name:     phase.Name(),
			Duration: duration.Round(time.Millisecond),
			Failed:   err != nil,
		})
		ctx.Metrics.ObservePhase(phase.Name(), duration, err)

		if err != nil {
			log.Error(err, "Phase failed")
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		log.Info("Phase completed", "duration", duration.Round(time.Millisecond).String())
	}

	ctx.Logger.Info("Bring-up completed", "duration", time.Since(start).Round(time.Millisecond).String())
	return nil
}
