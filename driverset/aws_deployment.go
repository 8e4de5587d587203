package driverset

import (
	"io"

	"ec2-deployer/config"
	"ec2-deployer/driver"
	"ec2-deployer/resources"
)

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . DeploymentDriverSet
type DeploymentDriverSet interface {
	InstanceDriver() resources.InstanceDriver
	SetupDriver() resources.SetupDriver
	HealthCheckDriver() resources.HealthCheckDriver
	TerminationDriver() resources.TerminationDriver
}

type awsDeploymentDriverSet struct {
	instanceDriver    *driver.SDKRunInstanceDriver
	setupDriver       *driver.SSHSetupDriver
	healthCheckDriver *driver.HTTPHealthCheckDriver
	terminationDriver *driver.SDKTerminateInstanceDriver
}

func NewAwsDeploymentDriverSet(logDest io.Writer, creds config.Credentials, sshUser string, sshKeyPath string) DeploymentDriverSet {
	return &awsDeploymentDriverSet{
		instanceDriver:    driver.NewRunInstanceDriver(logDest, creds),
		setupDriver:       driver.NewSSHSetupDriver(logDest, sshUser, sshKeyPath),
		healthCheckDriver: driver.NewHTTPHealthCheckDriver(logDest),
		terminationDriver: driver.NewTerminateInstanceDriver(logDest, creds),
	}
}

func (s *awsDeploymentDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *awsDeploymentDriverSet) SetupDriver() resources.SetupDriver {
	return s.setupDriver
}

func (s *awsDeploymentDriverSet) HealthCheckDriver() resources.HealthCheckDriver {
	return s.healthCheckDriver
}

func (s *awsDeploymentDriverSet) TerminationDriver() resources.TerminationDriver {
	return s.terminationDriver
}
