package resources

import "time"

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Instance lifecycle states as reported by EC2
const (
	InstancePendingState    = "pending"
	InstanceRunningState    = "running"
	InstanceTerminatedState = "terminated"
)

// AppPort is the port the deployed application must answer on
const AppPort = 80

// InstanceDriver abstracts the API calls required to provision a running instance
//
//counterfeiter:generate . InstanceDriver
type InstanceDriver interface {
	Create(InstanceDriverConfig) (Instance, error)
}

// TerminationDriver abstracts the API calls required to tear an instance down
//
//counterfeiter:generate . TerminationDriver
type TerminationDriver interface {
	Terminate(Instance) error
}

// Instance represents a provisioned instance in EC2
type Instance struct {
	InstanceID string
	PublicIP   string
	State      string
}

func (i Instance) ID() string {
	return i.InstanceID
}

func (i Instance) Status() string {
	return i.State
}

// InstanceDriverConfig describes the instance an InstanceDriver should provision
type InstanceDriverConfig struct {
	AmiID          string
	InstanceType   string
	KeyName        string
	SecurityGroups []string
	Name           string
	Tags           map[string]string
	PollTimeout    time.Duration
	PollInterval   time.Duration
}
