package driver

import (
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"ec2-deployer/resources"

	"golang.org/x/crypto/ssh"
)

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	sshPort        = 22
	sshDialTimeout = 10 * time.Second
)

// CommandRunner executes a single shell command on a remote host
//
//counterfeiter:generate . CommandRunner
type CommandRunner interface {
	Run(host string, command string) ([]byte, error)
}

var _ resources.SetupDriver = &SSHSetupDriver{}

// SSHSetupDriver configures a running instance over SSH, executing the setup
// steps in strict order. A failing step aborts the sequence; later steps are
// never attempted.
type SSHSetupDriver struct {
	runner CommandRunner
	logger *log.Logger
}

// NewSSHSetupDriver creates a SSHSetupDriver that authenticates with the
// private key at keyPath
func NewSSHSetupDriver(logDest io.Writer, sshUser string, keyPath string) *SSHSetupDriver {
	return &SSHSetupDriver{
		runner: &sshCommandRunner{user: sshUser, keyPath: keyPath},
		logger: log.New(logDest, "SSHSetupDriver ", log.LstdFlags),
	}
}

// NewSetupDriverWithRunner creates a SSHSetupDriver around an existing command runner
func NewSetupDriverWithRunner(logDest io.Writer, runner CommandRunner) *SSHSetupDriver {
	return &SSHSetupDriver{
		runner: runner,
		logger: log.New(logDest, "SSHSetupDriver ", log.LstdFlags),
	}
}

// Setup installs the runtime, clones the application repository, and starts
// the application, in that order
func (d *SSHSetupDriver) Setup(instance resources.Instance, driverConfig resources.SetupDriverConfig) error {
	setupStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Setup() in %f minutes\n", time.Since(startTime).Minutes())
	}(setupStartTime)

	for _, step := range setupSteps(driverConfig.RepoURL) {
		d.logger.Printf("running setup step %s on instance %s\n", step.name, instance.InstanceID)

		output, err := d.runner.Run(instance.PublicIP, step.command)
		if err != nil {
			if len(output) > 0 {
				d.logger.Printf("setup step %s output: %s\n", step.name, string(output))
			}
			return resources.SetupStepError{Step: step.name, Cause: err}
		}

		d.logger.Printf("setup step %s succeeded\n", step.name)
	}

	return nil
}

type setupStep struct {
	name    string
	command string
}

func setupSteps(repoURL string) []setupStep {
	repoURL = strings.TrimSuffix(repoURL, ".git")

	return []setupStep{
		{
			name:    resources.InstallRuntimeStep,
			command: "sudo yum update -y && sudo yum install -y java-21-amazon-corretto-devel maven git",
		},
		{
			name:    resources.CloneRepositoryStep,
			command: fmt.Sprintf("cd /home/ec2-user && git clone %s.git app", repoURL),
		},
		{
			name: resources.StartApplicationStep,
			command: "cd /home/ec2-user/app && mvn clean package -DskipTests && " +
				"sudo nohup java -jar target/*.jar --server.port=80 > /dev/null 2>&1 & sleep 1",
		},
	}
}

type sshCommandRunner struct {
	user    string
	keyPath string
}

func (r *sshCommandRunner) Run(host string, command string) ([]byte, error) {
	keyBytes, err := os.ReadFile(r.keyPath)
	if err != nil {
		return nil, fmt.Errorf("reading SSH private key %s: %s", r.keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing SSH private key %s: %s", r.keyPath, err)
	}

	clientConfig := &ssh.ClientConfig{
		User:            r.user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
		Timeout:         sshDialTimeout,
	}

	client, err := ssh.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(sshPort)), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %s", host, err)
	}
	defer client.Close() //nolint:errcheck

	session, err := client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("opening SSH session on %s: %s", host, err)
	}
	defer session.Close() //nolint:errcheck

	return session.CombinedOutput(command)
}
