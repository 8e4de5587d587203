package driver

import (
	"fmt"
	"io"
	"log"

	"ec2-deployer/config"
	"ec2-deployer/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.TerminationDriver = &SDKTerminateInstanceDriver{}

// SDKTerminateInstanceDriver requests instance termination in EC2
type SDKTerminateInstanceDriver struct {
	ec2Client *ec2.EC2
	logger    *log.Logger
}

// NewTerminateInstanceDriver creates a SDKTerminateInstanceDriver for tearing down instances in EC2
func NewTerminateInstanceDriver(logDest io.Writer, creds config.Credentials) *SDKTerminateInstanceDriver {
	logger := log.New(logDest, "SDKTerminateInstanceDriver ", log.LstdFlags)

	ec2Client := ec2.New(newEC2Session(creds))

	return &SDKTerminateInstanceDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// Terminate requests termination and waits for EC2 to report the instance terminated
func (d *SDKTerminateInstanceDriver) Terminate(instance resources.Instance) error {
	d.logger.Printf("terminating instance %s\n", instance.InstanceID)

	_, err := d.ec2Client.TerminateInstances(&ec2.TerminateInstancesInput{
		InstanceIds: []*string{aws.String(instance.InstanceID)},
	})
	if err != nil {
		return fmt.Errorf("terminating instance %s: %s", instance.InstanceID, err)
	}

	waiterConfig := WaiterConfig{
		Resource:      instance,
		DesiredStatus: resources.InstanceTerminatedState,
		PollRetries:   2,
	}

	_, err = WaitForStatus(d.describeInstanceState, waiterConfig)
	if err != nil {
		return fmt.Errorf("waiting for instance %s to be terminated: %s", instance.InstanceID, err)
	}

	d.logger.Printf("instance %s terminated\n", instance.InstanceID)

	return nil
}

func (d *SDKTerminateInstanceDriver) describeInstanceState(resource StatusResource) (StatusInfo, error) {
	describeOutput, err := d.ec2Client.DescribeInstances(&ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(resource.ID())},
	})
	if err != nil {
		return nil, fmt.Errorf("describing instance %s: %s", resource.ID(), err)
	}

	if len(describeOutput.Reservations) == 0 || len(describeOutput.Reservations[0].Instances) == 0 {
		return nil, fmt.Errorf("describing instance %s: instance not found", resource.ID())
	}

	info := resources.Instance{InstanceID: resource.ID()}

	instance := describeOutput.Reservations[0].Instances[0]
	if instance.State != nil {
		info.State = aws.StringValue(instance.State.Name)
	}

	return info, nil
}
