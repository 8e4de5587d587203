package driver

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

func NewEC2RetryerWithRetries(numRetries int) EC2Retryer {
	return EC2Retryer{client.DefaultRetryer{NumMaxRetries: numRetries}}
}

// EC2Retryer handles request throttling in addition to the error conditions
// covered by the default retryer
type EC2Retryer struct {
	client.DefaultRetryer
}

// MaxRetries returns the configured number of NumMaxRetries, defaults to 3
func (r EC2Retryer) MaxRetries() int {
	if r.NumMaxRetries <= 0 {
		return 3
	}
	return r.NumMaxRetries
}

// ShouldRetry treats RequestLimitExceeded as retryable before invoking
// DefaultRetryer.ShouldRetry
func (r EC2Retryer) ShouldRetry(req *request.Request) bool {
	if req.Error != nil {
		if err, ok := req.Error.(awserr.Error); ok {
			if err.Code() == "RequestLimitExceeded" {
				return true
			}
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}
