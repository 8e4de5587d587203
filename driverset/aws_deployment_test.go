package driverset_test

import (
	"ec2-deployer/config"
	"ec2-deployer/driverset"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AwsDeploymentDriverSet", func() {
	It("bundles a driver for every deployment operation", func() {
		creds := config.Credentials{
			AccessKey: "some-access-key",
			SecretKey: "some-secret-key",
			Region:    "us-east-1",
		}

		ds := driverset.NewAwsDeploymentDriverSet(GinkgoWriter, creds, "ec2-user", "/tmp/some-key.pem")

		Expect(ds.InstanceDriver()).ToNot(BeNil())
		Expect(ds.SetupDriver()).ToNot(BeNil())
		Expect(ds.HealthCheckDriver()).ToNot(BeNil())
		Expect(ds.TerminationDriver()).ToNot(BeNil())
	})
})
