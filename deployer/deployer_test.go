package deployer_test

import (
	"errors"
	"time"

	"ec2-deployer/config"
	"ec2-deployer/deployer"
	"ec2-deployer/driverset/driversetfakes"
	"ec2-deployer/resources"
	"ec2-deployer/resources/resourcesfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Deployer", func() {
	const (
		fakeInstanceID = "i-0123456789abcdef0"
		fakePublicIP   = "203.0.113.10"
	)

	var (
		fakeDs                *driversetfakes.FakeDeploymentDriverSet
		fakeInstanceDriver    *resourcesfakes.FakeInstanceDriver
		fakeSetupDriver       *resourcesfakes.FakeSetupDriver
		fakeHealthCheckDriver *resourcesfakes.FakeHealthCheckDriver
		fakeTerminationDriver *resourcesfakes.FakeTerminationDriver

		stageConfig config.Config
	)

	fakeInstance := resources.Instance{
		InstanceID: fakeInstanceID,
		PublicIP:   fakePublicIP,
		State:      resources.InstanceRunningState,
	}

	BeforeEach(func() {
		fakeInstanceDriver = &resourcesfakes.FakeInstanceDriver{}
		fakeInstanceDriver.CreateReturns(fakeInstance, nil)

		fakeSetupDriver = &resourcesfakes.FakeSetupDriver{}
		fakeHealthCheckDriver = &resourcesfakes.FakeHealthCheckDriver{}
		fakeTerminationDriver = &resourcesfakes.FakeTerminationDriver{}

		fakeDs = &driversetfakes.FakeDeploymentDriverSet{}
		fakeDs.InstanceDriverReturns(fakeInstanceDriver)
		fakeDs.SetupDriverReturns(fakeSetupDriver)
		fakeDs.HealthCheckDriverReturns(fakeHealthCheckDriver)
		fakeDs.TerminationDriverReturns(fakeTerminationDriver)

		var err error
		stageConfig, err = config.NewFromStage("dev")
		Expect(err).ToNot(HaveOccurred())
	})

	It("uses the provided driver set to orchestrate the deployment", func() {
		d := deployer.New(GinkgoWriter, stageConfig)
		m, err := d.Deploy(fakeDs)
		Expect(err).ToNot(HaveOccurred())

		Expect(fakeInstanceDriver.CreateCallCount()).To(Equal(1), "Expected InstanceDriver.Create to be called once")
		Expect(fakeInstanceDriver.CreateArgsForCall(0)).To(Equal(resources.InstanceDriverConfig{
			AmiID:          stageConfig.AmiID,
			InstanceType:   stageConfig.InstanceType,
			SecurityGroups: stageConfig.SecurityGroups,
			Name:           stageConfig.DeploymentName,
			PollTimeout:    stageConfig.ProvisionTimeout(),
		}))

		Expect(fakeSetupDriver.SetupCallCount()).To(Equal(1), "Expected SetupDriver.Setup to be called once")
		setupInstance, setupConfig := fakeSetupDriver.SetupArgsForCall(0)
		Expect(setupInstance).To(Equal(fakeInstance))
		Expect(setupConfig).To(Equal(resources.SetupDriverConfig{
			RepoURL: stageConfig.GithubRepo,
		}))

		Expect(fakeHealthCheckDriver.CheckCallCount()).To(Equal(1), "Expected HealthCheckDriver.Check to be called once")
		Expect(fakeHealthCheckDriver.CheckArgsForCall(0)).To(Equal(resources.HealthCheckDriverConfig{
			Endpoint:     "http://203.0.113.10:80/",
			PollInterval: 5 * time.Second,
			PollTimeout:  300 * time.Second,
		}))

		Expect(fakeTerminationDriver.TerminateCallCount()).To(Equal(1), "Expected TerminationDriver.Terminate to be called once for the dev stage")
		Expect(fakeTerminationDriver.TerminateArgsForCall(0)).To(Equal(fakeInstance))

		Expect(m.InstanceID).To(Equal(fakeInstanceID))
		Expect(m.PublicIP).To(Equal(fakePublicIP))
		Expect(m.Stage).To(Equal(config.DevStage))
		Expect(m.HealthStatus).To(Equal(resources.HealthyStatus))
		Expect(m.Terminated).To(BeTrue())
		Expect(d.Warnings().Error()).ToNot(HaveOccurred())
	})

	It("issues no termination request when the stage's termination flag is unset", func() {
		prodConfig, err := config.NewFromStage("prod")
		Expect(err).ToNot(HaveOccurred())

		d := deployer.New(GinkgoWriter, prodConfig)
		m, err := d.Deploy(fakeDs)
		Expect(err).ToNot(HaveOccurred())

		Expect(fakeTerminationDriver.TerminateCallCount()).To(Equal(0), "Expected no termination request at all")
		Expect(m.Terminated).To(BeFalse())
	})

	It("returns a ProvisionError when the instance driver fails", func() {
		driverErr := errors.New("InstanceLimitExceeded")
		fakeInstanceDriver.CreateReturns(resources.Instance{}, driverErr)

		d := deployer.New(GinkgoWriter, stageConfig)
		_, err := d.Deploy(fakeDs)

		Expect(err).To(BeAssignableToTypeOf(deployer.ProvisionError{}))
		Expect(err.Error()).To(ContainSubstring(driverErr.Error()))

		Expect(fakeSetupDriver.SetupCallCount()).To(Equal(0))
		Expect(fakeHealthCheckDriver.CheckCallCount()).To(Equal(0))
		Expect(fakeTerminationDriver.TerminateCallCount()).To(Equal(0))
	})

	It("returns a SetupError carrying the failing step when setup fails", func() {
		fakeSetupDriver.SetupReturns(resources.SetupStepError{
			Step:  resources.CloneRepositoryStep,
			Cause: errors.New("exit status 128"),
		})

		d := deployer.New(GinkgoWriter, stageConfig)
		_, err := d.Deploy(fakeDs)

		var setupErr deployer.SetupError
		Expect(errors.As(err, &setupErr)).To(BeTrue())
		Expect(setupErr.Step).To(Equal(resources.CloneRepositoryStep))
		Expect(err.Error()).To(ContainSubstring("clone-repository"))

		Expect(fakeHealthCheckDriver.CheckCallCount()).To(Equal(0))
		Expect(fakeTerminationDriver.TerminateCallCount()).To(Equal(0))
	})

	It("returns a HealthCheckError when the application never becomes reachable", func() {
		driverErr := errors.New("timed out after 5m0s polling on resource http://203.0.113.10:80/")
		fakeHealthCheckDriver.CheckReturns(driverErr)

		d := deployer.New(GinkgoWriter, stageConfig)
		_, err := d.Deploy(fakeDs)

		Expect(err).To(BeAssignableToTypeOf(deployer.HealthCheckError{}))
		Expect(err.Error()).To(ContainSubstring(driverErr.Error()))

		Expect(fakeTerminationDriver.TerminateCallCount()).To(Equal(0))
	})

	It("collects a warning instead of failing when the termination request is rejected", func() {
		fakeTerminationDriver.TerminateReturns(errors.New("UnauthorizedOperation"))

		d := deployer.New(GinkgoWriter, stageConfig)
		m, err := d.Deploy(fakeDs)
		Expect(err).ToNot(HaveOccurred(), "Expected a rejected termination to be non-fatal")

		Expect(m.Terminated).To(BeFalse())

		warn := d.Warnings().Error()
		Expect(warn).To(HaveOccurred())
		Expect(warn.Error()).To(ContainSubstring("UnauthorizedOperation"))
		Expect(warn.Error()).To(ContainSubstring(fakeInstanceID))
	})
})
