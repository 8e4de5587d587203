package config_test

import (
	"bytes"
	"time"

	"ec2-deployer/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("NewFromStage", func() {
		It("returns the documented static mapping for the dev stage", func() {
			c, err := config.NewFromStage("dev")
			Expect(err).ToNot(HaveOccurred())

			Expect(c.Stage).To(Equal(config.DevStage))
			Expect(c.InstanceType).To(Equal("t2.micro"))
			Expect(c.ShouldTerminate()).To(BeTrue())
		})

		It("returns the documented static mapping for the prod stage", func() {
			c, err := config.NewFromStage("prod")
			Expect(err).ToNot(HaveOccurred())

			Expect(c.Stage).To(Equal(config.ProdStage))
			Expect(c.InstanceType).To(Equal("t3.medium"))
			Expect(c.ShouldTerminate()).To(BeFalse())
		})

		It("defaults the shared instance parameters", func() {
			c, err := config.NewFromStage("dev")
			Expect(err).ToNot(HaveOccurred())

			Expect(c.DeploymentName).To(MatchRegexp("DEPLOY-.+"))
			Expect(c.AmiID).To(Equal(config.DefaultAmiID))
			Expect(c.Region).To(Equal(config.DefaultRegion))
			Expect(c.GithubRepo).To(Equal(config.DefaultRepo))
			Expect(c.SSHUser).To(Equal(config.DefaultSSHUser))
			Expect(c.SecurityGroups).To(ConsistOf("default"))
			Expect(c.HealthCheckPath).To(Equal("/"))
			Expect(c.HealthCheckInterval()).To(Equal(5 * time.Second))
			Expect(c.HealthCheckTimeout()).To(Equal(300 * time.Second))
			Expect(c.ProvisionTimeout()).To(Equal(10 * time.Minute))
		})

		It("is case insensitive about the stage name", func() {
			c, err := config.NewFromStage("DEV")
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Stage).To(Equal(config.DevStage))
		})

		It("fails with an UnknownStageError for unrecognized stage names", func() {
			for _, stage := range []string{"staging", "production", "qa", ""} {
				_, err := config.NewFromStage(stage)
				Expect(err).To(BeAssignableToTypeOf(config.UnknownStageError{}))
				Expect(err.Error()).To(ContainSubstring("unrecognized stage"))
			}
		})
	})

	Describe("NewFromReader", func() {
		baseJSON := `
    {
      "instance_type": "t3.large",
      "ami_id": "ami-deadbeef",
      "region": "eu-west-1",
      "key_name": "deployer-key",
      "ssh_private_key": "/home/deployer/.ssh/deployer-key.pem",
      "github_repo": "https://github.com/example/app",
      "health_check_path": "/actuator/health",
      "terminate_on_completion": false
    }
  `

		It("overrides the stage defaults with the file's values", func() {
			c, err := config.NewFromReader("dev", bytes.NewBufferString(baseJSON))
			Expect(err).ToNot(HaveOccurred())

			Expect(c.Stage).To(Equal(config.DevStage))
			Expect(c.InstanceType).To(Equal("t3.large"))
			Expect(c.AmiID).To(Equal("ami-deadbeef"))
			Expect(c.Region).To(Equal("eu-west-1"))
			Expect(c.KeyName).To(Equal("deployer-key"))
			Expect(c.GithubRepo).To(Equal("https://github.com/example/app"))
			Expect(c.HealthCheckPath).To(Equal("/actuator/health"))
			Expect(c.ShouldTerminate()).To(BeFalse())
		})

		It("fills omitted fields with the stage defaults", func() {
			c, err := config.NewFromReader("prod", bytes.NewBufferString(`{"key_name": "deployer-key"}`))
			Expect(err).ToNot(HaveOccurred())

			Expect(c.InstanceType).To(Equal("t3.medium"))
			Expect(c.AmiID).To(Equal(config.DefaultAmiID))
			Expect(c.ShouldTerminate()).To(BeFalse())
		})

		It("keeps an explicit terminate_on_completion over the stage default", func() {
			c, err := config.NewFromReader("prod", bytes.NewBufferString(`{"terminate_on_completion": true}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(c.ShouldTerminate()).To(BeTrue())
		})

		It("fails with an UnknownStageError before reading the file", func() {
			_, err := config.NewFromReader("staging", bytes.NewBufferString(baseJSON))
			Expect(err).To(BeAssignableToTypeOf(config.UnknownStageError{}))
		})

		It("returns an error for malformed JSON", func() {
			_, err := config.NewFromReader("dev", bytes.NewBufferString(`{`))
			Expect(err).To(HaveOccurred())
		})

		It("rejects a health check path that does not begin with '/'", func() {
			_, err := config.NewFromReader("dev", bytes.NewBufferString(`{"health_check_path": "health"}`))
			Expect(err).To(MatchError("health_check_path must begin with '/'"))
		})

		It("rejects a health check interval that is not less than the timeout", func() {
			_, err := config.NewFromReader("dev", bytes.NewBufferString(`{"health_check_interval_seconds": 30, "health_check_timeout_seconds": 30}`))
			Expect(err).To(MatchError("health_check_interval_seconds must be less than health_check_timeout_seconds"))
		})
	})
})
