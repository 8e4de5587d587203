package resources

import "fmt"

// Names of the ordered setup steps run over the remote command channel
const (
	InstallRuntimeStep   = "install-runtime"
	CloneRepositoryStep  = "clone-repository"
	StartApplicationStep = "start-application"
)

// SetupDriver abstracts the remote command channel used to configure a running instance
//
//counterfeiter:generate . SetupDriver
type SetupDriver interface {
	Setup(Instance, SetupDriverConfig) error
}

type SetupDriverConfig struct {
	RepoURL string
}

// SetupStepError reports which setup step failed on the instance
type SetupStepError struct {
	Step  string
	Cause error
}

func (e SetupStepError) Error() string {
	return fmt.Sprintf("setup step %s failed: %s", e.Step, e.Cause)
}
