package driver

import (
	"ec2-deployer/config"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
)

func newEC2Session(creds config.Credentials) *session.Session {
	awsConfig := request.WithRetryer(creds.GetAwsConfig(), NewEC2RetryerWithRetries(7))

	return session.Must(session.NewSession(awsConfig))
}
