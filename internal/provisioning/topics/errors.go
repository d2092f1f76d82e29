package topics

import (
	"errors"
	"fmt"
)

// CreateError reports a topic that could not be created.
type CreateError struct {
	Topic    string
	ExitCode int
	Output   string
	Err      error
}

func (e *CreateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to create topic %q: %v", e.Topic, e.Err)
	}
	return fmt.Sprintf("failed to create topic %q: exit code %d", e.Topic, e.ExitCode)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// IsCreateError reports whether err contains a *CreateError.
func IsCreateError(err error) bool {
	var createErr *CreateError
	return errors.As(err, &createErr)
}
