package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
	uuid "github.com/satori/go.uuid"
)

const (
	DevStage  = "dev"
	ProdStage = "prod"
)

// Shared stage defaults, taken from the application's published deployment profile
const (
	DefaultAmiID           = "ami-0c02fb55956c7d316"
	DefaultRegion          = "us-east-1"
	DefaultRepo            = "https://github.com/techeazy-consulting/techeazy-devops"
	DefaultSSHUser         = "ec2-user"
	DefaultHealthCheckPath = "/"

	defaultHealthCheckIntervalSeconds = 5
	defaultHealthCheckTimeoutSeconds  = 300
	defaultProvisionTimeoutMinutes    = 10
)

// Static per-stage instance parameters. Dev instances are cost-controlled and
// terminated once the deployment has been verified; prod instances stay up.
var stageDefaults = map[string]struct {
	InstanceType          string
	TerminateOnCompletion bool
}{
	DevStage:  {InstanceType: "t2.micro", TerminateOnCompletion: true},
	ProdStage: {InstanceType: "t3.medium", TerminateOnCompletion: false},
}

// UnknownStageError is returned for stage names outside the enumerated set
type UnknownStageError struct {
	Stage string
}

func (e UnknownStageError) Error() string {
	return fmt.Sprintf("unrecognized stage: %s (must be one of: ['dev', 'prod'])", e.Stage)
}

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type Config struct {
	Stage                      string            `json:"-"`
	DeploymentName             string            `json:"deployment_name"`
	InstanceType               string            `json:"instance_type"`
	AmiID                      string            `json:"ami_id"`
	Region                     string            `json:"region"`
	KeyName                    string            `json:"key_name"`
	SSHUser                    string            `json:"ssh_user"`
	SSHPrivateKeyPath          string            `json:"ssh_private_key"`
	SecurityGroups             []string          `json:"security_groups"`
	GithubRepo                 string            `json:"github_repo"`
	HealthCheckPath            string            `json:"health_check_path"`
	HealthCheckIntervalSeconds int               `json:"health_check_interval_seconds"`
	HealthCheckTimeoutSeconds  int               `json:"health_check_timeout_seconds"`
	ProvisionTimeoutMinutes    int               `json:"provision_timeout_minutes"`
	TerminateOnCompletion      *bool             `json:"terminate_on_completion"`
	Tags                       map[string]string `json:"tags,omitempty"`
}

type Credentials struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	RoleArn   string `json:"role_arn"`
	Region    string `json:"-"`
}

// NewFromStage resolves the built-in configuration for one of the enumerated stages
func NewFromStage(stage string) (Config, error) {
	stage = strings.ToLower(stage)
	if _, ok := stageDefaults[stage]; !ok {
		return Config{}, UnknownStageError{Stage: stage}
	}

	c := Config{Stage: stage}
	c.applyDefaults()

	err := c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// NewFromReader resolves stage configuration from a JSON file, filling any
// omitted fields with the stage defaults
func NewFromReader(stage string, r io.Reader) (Config, error) {
	stage = strings.ToLower(stage)
	if _, ok := stageDefaults[stage]; !ok {
		return Config{}, UnknownStageError{Stage: stage}
	}

	c := Config{}

	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	err = json.Unmarshal(b, &c)
	if err != nil {
		return Config{}, err
	}

	c.Stage = stage
	c.applyDefaults()

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	defaults := stageDefaults[c.Stage]

	if c.DeploymentName == "" {
		c.DeploymentName = fmt.Sprintf("DEPLOY-%s", uuid.NewV4().String())
	}
	if c.InstanceType == "" {
		c.InstanceType = defaults.InstanceType
	}
	if c.AmiID == "" {
		c.AmiID = DefaultAmiID
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.SSHUser == "" {
		c.SSHUser = DefaultSSHUser
	}
	if len(c.SecurityGroups) == 0 {
		c.SecurityGroups = []string{"default"}
	}
	if c.GithubRepo == "" {
		c.GithubRepo = DefaultRepo
	}
	if c.HealthCheckPath == "" {
		c.HealthCheckPath = DefaultHealthCheckPath
	}
	if c.HealthCheckIntervalSeconds == 0 {
		c.HealthCheckIntervalSeconds = defaultHealthCheckIntervalSeconds
	}
	if c.HealthCheckTimeoutSeconds == 0 {
		c.HealthCheckTimeoutSeconds = defaultHealthCheckTimeoutSeconds
	}
	if c.ProvisionTimeoutMinutes == 0 {
		c.ProvisionTimeoutMinutes = defaultProvisionTimeoutMinutes
	}
	if c.TerminateOnCompletion == nil {
		terminate := defaults.TerminateOnCompletion
		c.TerminateOnCompletion = &terminate
	}
}

func (c *Config) validate() error {
	if c.InstanceType == "" {
		return errors.New("instance_type must be specified")
	}

	if c.AmiID == "" {
		return errors.New("ami_id must be specified")
	}

	if c.Region == "" {
		return errors.New("region must be specified")
	}

	if c.GithubRepo == "" {
		return errors.New("github_repo must be specified")
	}

	if !strings.HasPrefix(c.HealthCheckPath, "/") {
		return errors.New("health_check_path must begin with '/'")
	}

	if c.HealthCheckIntervalSeconds >= c.HealthCheckTimeoutSeconds {
		return errors.New("health_check_interval_seconds must be less than health_check_timeout_seconds")
	}

	return nil
}

// ShouldTerminate reports whether the instance is torn down after a successful deployment
func (c *Config) ShouldTerminate() bool {
	return c.TerminateOnCompletion != nil && *c.TerminateOnCompletion
}

func (c *Config) ProvisionTimeout() time.Duration {
	return time.Duration(c.ProvisionTimeoutMinutes) * time.Minute
}

func (c *Config) HealthCheckInterval() time.Duration {
	return time.Duration(c.HealthCheckIntervalSeconds) * time.Second
}

func (c *Config) HealthCheckTimeout() time.Duration {
	return time.Duration(c.HealthCheckTimeoutSeconds) * time.Second
}

// CredentialsFromEnv reads AWS credentials from the process environment.
// The values are handed to the SDK and are never logged.
func CredentialsFromEnv() (Credentials, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if accessKey == "" || secretKey == "" {
		return Credentials{}, errors.New("AWS credentials not found in environment variables (AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set)")
	}

	return Credentials{
		AccessKey: accessKey,
		SecretKey: secretKey,
		RoleArn:   os.Getenv("AWS_ROLE_ARN"),
		Region:    os.Getenv("AWS_DEFAULT_REGION"),
	}, nil
}

// GetAwsConfig builds an SDK config from the credentials, assuming a role via
// STS when one is configured and falling back to the EC2 instance role when no
// static credentials are present
func (c Credentials) GetAwsConfig() *aws.Config {
	var awsCredentials *credentials.Credentials

	if c.AccessKey != "" && c.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: c.AccessKey, SecretAccessKey: c.SecretKey},
		)

		if c.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(c.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				c.RoleArn,
			)
		}
	} else {
		awsCredentials = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{
			Client: ec2metadata.New(session.Must(session.NewSession())),
		})
	}

	return aws.NewConfig().WithRegion(c.Region).WithCredentials(awsCredentials)
}
