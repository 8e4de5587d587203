package manifest

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

// Manifest is the record of a completed deployment, written to stdout at the
// end of a successful run
type Manifest struct {
	DeploymentName string `yaml:"deployment_name"`
	Stage          string `yaml:"stage"`
	Region         string `yaml:"region"`
	AmiID          string `yaml:"ami_id"`
	InstanceID     string `yaml:"instance_id"`
	InstanceType   string `yaml:"instance_type"`
	PublicIP       string `yaml:"public_ip"`
	EndpointURL    string `yaml:"endpoint_url"`
	HealthStatus   string `yaml:"health_status"`
	Terminated     bool   `yaml:"terminated"`
}

func NewFromReader(r io.Reader) (*Manifest, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	err = yaml.Unmarshal(b, m)
	if err != nil {
		return nil, err
	}

	if m.InstanceID == "" {
		return nil, fmt.Errorf("manifest missing instance_id")
	}

	return m, nil
}

func (m *Manifest) Write(w io.Writer) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
