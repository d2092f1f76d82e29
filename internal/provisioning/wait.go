package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/kafka-topology/internal/util/poll"
)

// Readiness check names used in logs, metrics and timeout errors.
const (
	CheckCoordination = "zookeeper"
	CheckBrokers      = "brokers"
)

// WaitFor polls cond against node using the run's check interval and
// readiness timeout. Progress is logged on every unsuccessful check; a
// timeout is returned as a *poll.TimeoutError and is fatal for the run.
func (c *Context) WaitFor(check string, node Node, cond poll.Condition) error {
	name := fmt.Sprintf("%s on %s", check, node.Hostname())
	log := c.Logger.WithValues("check", check, "node", node.Hostname())
	start := time.Now()

	err := poll.Until(c, poll.Options{
		Name:     name,
		Interval: c.Timeouts.CheckInterval,
		Timeout:  c.Timeouts.ReadinessTimeout,
		OnAttempt: func(attempt int, elapsed time.Duration) {
			log.Info("Not ready yet, waiting",
				"attempt", attempt,
				"elapsed", elapsed.Round(time.Millisecond).String(),
				"timeout", c.Timeouts.ReadinessTimeout.String())
		},
		OnSuccess: func(elapsed time.Duration) {
			log.Info(fmt.Sprintf("Conditions satisfied after %.2f seconds.", elapsed.Seconds()))
		},
		OnFailure: func(timeout time.Duration) error {
			return &poll.TimeoutError{Name: name, Timeout: timeout}
		},
	}, func(ctx context.Context) bool {
		c.Metrics.ObserveAttempt(check, node.Hostname())
		return cond(ctx)
	})

	c.Metrics.ObserveWait(check, time.Since(start), err)
	return err
}
