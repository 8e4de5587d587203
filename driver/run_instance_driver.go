package driver

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"ec2-deployer/config"
	"ec2-deployer/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.InstanceDriver = &SDKRunInstanceDriver{}

// SDKRunInstanceDriver launches an EC2 instance and waits for it to be running
// with a public IP
type SDKRunInstanceDriver struct {
	ec2Client *ec2.EC2
	logger    *log.Logger
}

// NewRunInstanceDriver creates a SDKRunInstanceDriver for provisioning instances in EC2
func NewRunInstanceDriver(logDest io.Writer, creds config.Credentials) *SDKRunInstanceDriver {
	logger := log.New(logDest, "SDKRunInstanceDriver ", log.LstdFlags)

	ec2Client := ec2.New(newEC2Session(creds))

	return &SDKRunInstanceDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// Create requests a new instance and blocks until EC2 reports it running,
// bounded by the configured poll timeout
func (d *SDKRunInstanceDriver) Create(driverConfig resources.InstanceDriverConfig) (resources.Instance, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Create() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Printf("launching %s instance from AMI %s\n", driverConfig.InstanceType, driverConfig.AmiID)

	runInput := &ec2.RunInstancesInput{
		ImageId:           aws.String(driverConfig.AmiID),
		InstanceType:      aws.String(driverConfig.InstanceType),
		MinCount:          aws.Int64(1),
		MaxCount:          aws.Int64(1),
		SecurityGroups:    aws.StringSlice(driverConfig.SecurityGroups),
		TagSpecifications: instanceTags(driverConfig),
	}
	if driverConfig.KeyName != "" {
		runInput.KeyName = aws.String(driverConfig.KeyName)
	}

	reqOutput, err := d.ec2Client.RunInstances(runInput)
	if err != nil {
		return resources.Instance{}, fmt.Errorf("launching instance: %s", err)
	}

	if len(reqOutput.Instances) == 0 {
		return resources.Instance{}, errors.New("launching instance: run instances request returned no instances")
	}

	instanceIDptr := reqOutput.Instances[0].InstanceId
	if instanceIDptr == nil {
		return resources.Instance{}, errors.New("launching instance: instance ID empty in run instances response")
	}

	instance := resources.Instance{
		InstanceID: *instanceIDptr,
		State:      resources.InstancePendingState,
	}

	d.logger.Printf("launched instance %s\n", instance.InstanceID)

	waiterConfig := WaiterConfig{
		Resource:      instance,
		DesiredStatus: resources.InstanceRunningState,
		PollInterval:  driverConfig.PollInterval,
		PollTimeout:   driverConfig.PollTimeout,
		PollRetries:   2,
	}

	waitStartTime := time.Now()
	info, err := WaitForStatus(d.describeInstance, waiterConfig)
	if err != nil {
		return resources.Instance{}, fmt.Errorf("waiting for instance %s to be running: %s", instance.InstanceID, err)
	}

	d.logger.Printf("waited on instance %s for %f minutes\n", instance.InstanceID, time.Since(waitStartTime).Minutes())

	runningInstance, ok := info.(resources.Instance)
	if !ok {
		return resources.Instance{}, fmt.Errorf("describing instance %s: unexpected status info", instance.InstanceID)
	}

	if runningInstance.PublicIP == "" {
		return resources.Instance{}, fmt.Errorf("instance %s is running but has no public IP", instance.InstanceID)
	}

	d.logger.Printf("instance %s is running with public IP %s\n", runningInstance.InstanceID, runningInstance.PublicIP)

	return runningInstance, nil
}

func (d *SDKRunInstanceDriver) describeInstance(resource StatusResource) (StatusInfo, error) {
	describeOutput, err := d.ec2Client.DescribeInstances(&ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(resource.ID())},
	})
	if err != nil {
		return nil, fmt.Errorf("describing instance %s: %s", resource.ID(), err)
	}

	if len(describeOutput.Reservations) == 0 || len(describeOutput.Reservations[0].Instances) == 0 {
		return nil, fmt.Errorf("describing instance %s: instance not found", resource.ID())
	}

	instance := describeOutput.Reservations[0].Instances[0]

	info := resources.Instance{InstanceID: resource.ID()}
	if instance.State != nil {
		info.State = aws.StringValue(instance.State.Name)
	}
	if instance.PublicIpAddress != nil {
		info.PublicIP = *instance.PublicIpAddress
	}

	return info, nil
}

func instanceTags(driverConfig resources.InstanceDriverConfig) []*ec2.TagSpecification {
	tags := []*ec2.Tag{
		{Key: aws.String("Name"), Value: aws.String(driverConfig.Name)},
	}

	for key, value := range driverConfig.Tags {
		tags = append(tags, &ec2.Tag{Key: aws.String(key), Value: aws.String(value)})
	}

	return []*ec2.TagSpecification{
		{
			ResourceType: aws.String(ec2.ResourceTypeInstance),
			Tags:         tags,
		},
	}
}
