package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"ec2-deployer/config"
	"ec2-deployer/deployer"
	"ec2-deployer/driverset"
)

func usage(message string) {
	fmt.Fprintln(os.Stderr, message)                 //nolint:errcheck
	fmt.Fprintln(os.Stderr, "Usage of ec2-deployer") //nolint:errcheck
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := log.New(sharedWriter, "", log.LstdFlags)

	stage := flag.String("stage", "", "Deployment stage, one of: dev, prod")
	configPath := flag.String("c", "", "Path to a JSON stage configuration file (optional; stage defaults are used otherwise)")

	flag.Parse()

	if *stage == "" {
		usage("--stage flag is required")
	}

	creds, err := config.CredentialsFromEnv()
	if err != nil {
		logger.Fatalf("Error loading AWS credentials: %s", err)
	}

	var c config.Config
	if *configPath != "" {
		configFile, err := os.Open(*configPath)
		if err != nil {
			logger.Fatalf("Error opening config file: %s", err)
		}

		defer func() {
			closeErr := configFile.Close()
			if closeErr != nil {
				logger.Fatalf("Error closing config file: %s", closeErr)
			}
		}()

		c, err = config.NewFromReader(*stage, configFile)
		if err != nil {
			logger.Fatalf("Error parsing config file: %s. Message: %s", *configPath, err)
		}
	} else {
		c, err = config.NewFromStage(*stage)
		if err != nil {
			logger.Fatalf("Error resolving stage configuration: %s", err)
		}
	}

	if creds.Region == "" {
		creds.Region = c.Region
	}

	ds := driverset.NewAwsDeploymentDriverSet(sharedWriter, creds, c.SSHUser, c.SSHPrivateKeyPath)
	d := deployer.New(sharedWriter, c)

	m, err := d.Deploy(ds)
	if err != nil {
		logger.Fatalf("Deployment of stage %s failed: %s", c.Stage, err)
	}

	if warn := d.Warnings().Error(); warn != nil {
		logger.Printf("WARNING: %s", warn)
	}

	err = m.Write(os.Stdout)
	if err != nil {
		logger.Fatalf("writing deployment manifest: %s", err)
	}
	logger.Println("Deployment finished successfully")
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
