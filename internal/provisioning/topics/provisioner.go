package topics

import (
	"errors"
	"fmt"

	"github.com/imamik/kafka-topology/internal/provisioning"
)

// CreateCommand is the image's topic creation helper.
const CreateCommand = "/create_topic"

const phase = "topics"

// Provisioner creates the configured topics on the designated node.
type Provisioner struct{}

// NewProvisioner creates a new topic provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
// Every topic is attempted once; failures are collected and returned
// together.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	names := ctx.Config.TopicNames()
	if len(names) == 0 {
		return nil
	}
	node := ctx.State.Designated()
	if node == nil {
		return errors.New("no node to create topics on")
	}
	quiet := ctx.Config.Quiet()

	var errs []error
	for _, topic := range names {
		err := createTopic(ctx, node, topic, quiet)
		ctx.Metrics.ObserveTopic(err)
		if err != nil {
			ctx.Logger.Error(err, "Topic creation failed", "topic", topic)
			errs = append(errs, err)
			continue
		}
		ctx.State.TopicsCreated = append(ctx.State.TopicsCreated, topic)
		ctx.Logger.Info("Created topic", "topic", topic, "node", node.Hostname())
	}
	return errors.Join(errs...)
}

// Command returns the command creating topic.
func Command(topic string) string {
	return fmt.Sprintf("%s %s", CreateCommand, topic)
}

func createTopic(ctx *provisioning.Context, node provisioning.Node, topic string, quiet bool) error {
	res, err := node.Execute(ctx, Command(topic), provisioning.ExecOptions{Quiet: quiet})
	if err != nil {
		return &CreateError{Topic: topic, ExitCode: -1, Err: err}
	}
	if !res.Succeeded() {
		return &CreateError{Topic: topic, ExitCode: res.ExitCode, Output: res.Stdout}
	}
	return nil
}
