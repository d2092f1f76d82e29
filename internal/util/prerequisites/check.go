// Package prerequisites checks that the client tools a bring-up shells out
// to are installed.
package prerequisites

import (
	"fmt"
	"os/exec"
)

// Docker is the client binary the local runner drives.
const Docker = "docker"

const dockerInstallURL = "https://docs.docker.com/engine/install/"

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// MissingToolError reports a required binary that is not on PATH.
type MissingToolError struct {
	Name       string
	InstallURL string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("missing required tool: %s (%s)", e.Name, e.InstallURL)
}

// CheckDocker returns a *MissingToolError when the docker client is not on
// PATH, and nil otherwise.
func CheckDocker() error {
	if _, err := lookPath(Docker); err != nil {
		return &MissingToolError{Name: Docker, InstallURL: dockerInstallURL}
	}
	return nil
}
