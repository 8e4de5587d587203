package deployer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"ec2-deployer/collection"
	"ec2-deployer/config"
	"ec2-deployer/driverset"
	"ec2-deployer/manifest"
	"ec2-deployer/resources"
)

// Deployer executes the end-to-end deployment workflow for a resolved stage:
// provision, setup, health check, optional teardown. Each step must succeed
// before the next begins; no step is retried.
type Deployer struct {
	stageConfig config.Config
	warnings    *collection.Warning
	logger      *log.Logger
}

func New(logDest io.Writer, stageConfig config.Config) *Deployer {
	return &Deployer{
		stageConfig: stageConfig,
		warnings:    &collection.Warning{},
		logger:      log.New(logDest, "Deployer ", log.LstdFlags),
	}
}

// ProvisionError indicates the cloud provider rejected the instance request or
// the instance never became reachable within the deadline
type ProvisionError struct {
	Cause error
}

func (e ProvisionError) Error() string {
	return fmt.Sprintf("provisioning instance: %s", e.Cause)
}

// SetupError indicates a remote setup command failed, identifying the step
type SetupError struct {
	Step  string
	Cause error
}

func (e SetupError) Error() string {
	return fmt.Sprintf("setting up instance: %s", e.Cause)
}

// HealthCheckError indicates the application never answered within the deadline
type HealthCheckError struct {
	Cause error
}

func (e HealthCheckError) Error() string {
	return fmt.Sprintf("verifying application health: %s", e.Cause)
}

// Deploy runs the workflow using the provided driver set and returns the
// deployment manifest on success
func (d *Deployer) Deploy(ds driverset.DeploymentDriverSet) (*manifest.Manifest, error) {
	deployStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Deploy() in %f minutes\n", time.Since(startTime).Minutes())
	}(deployStartTime)

	c := d.stageConfig

	instanceDriver := ds.InstanceDriver()
	instance, err := instanceDriver.Create(resources.InstanceDriverConfig{
		AmiID:          c.AmiID,
		InstanceType:   c.InstanceType,
		KeyName:        c.KeyName,
		SecurityGroups: c.SecurityGroups,
		Name:           c.DeploymentName,
		Tags:           c.Tags,
		PollTimeout:    c.ProvisionTimeout(),
	})
	if err != nil {
		return nil, ProvisionError{Cause: err}
	}

	d.logger.Printf("provisioned instance %s with public IP %s\n", instance.InstanceID, instance.PublicIP)

	setupDriver := ds.SetupDriver()
	err = setupDriver.Setup(instance, resources.SetupDriverConfig{RepoURL: c.GithubRepo})
	if err != nil {
		setupErr := SetupError{Cause: err}

		var stepErr resources.SetupStepError
		if errors.As(err, &stepErr) {
			setupErr.Step = stepErr.Step
		}

		return nil, setupErr
	}

	d.logger.Printf("instance %s configured\n", instance.InstanceID)

	endpoint := fmt.Sprintf("http://%s:%d%s", instance.PublicIP, resources.AppPort, c.HealthCheckPath)

	healthCheckDriver := ds.HealthCheckDriver()
	err = healthCheckDriver.Check(resources.HealthCheckDriverConfig{
		Endpoint:     endpoint,
		PollInterval: c.HealthCheckInterval(),
		PollTimeout:  c.HealthCheckTimeout(),
	})
	if err != nil {
		return nil, HealthCheckError{Cause: err}
	}

	d.logger.Printf("application on instance %s is reachable at %s\n", instance.InstanceID, endpoint)

	terminated := false
	if c.ShouldTerminate() {
		err = ds.TerminationDriver().Terminate(instance)
		if err != nil {
			d.warnings.Add(fmt.Errorf("terminating instance %s: %s", instance.InstanceID, err))
			d.logger.Printf("WARNING: failed to terminate instance %s: %s\n", instance.InstanceID, err)
		} else {
			terminated = true
		}
	}

	return &manifest.Manifest{
		DeploymentName: c.DeploymentName,
		Stage:          c.Stage,
		Region:         c.Region,
		AmiID:          c.AmiID,
		InstanceID:     instance.InstanceID,
		InstanceType:   c.InstanceType,
		PublicIP:       instance.PublicIP,
		EndpointURL:    endpoint,
		HealthStatus:   resources.HealthyStatus,
		Terminated:     terminated,
	}, nil
}

// Warnings returns the non-fatal failures collected during Deploy
func (d *Deployer) Warnings() *collection.Warning {
	return d.warnings
}
