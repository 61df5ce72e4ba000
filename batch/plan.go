package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var planValidate = validator.New()

// Validate checks the plan structure. Job parameters are checked per job by
// delta.Search at run time.
func (p Plan) Validate() error {
	if err := planValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	return nil
}

// Parse decodes and validates a YAML plan.
func Parse(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// Load reads and parses the plan at path.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("batch: reading plan: %w", err)
	}

	return Parse(data)
}

// Write encodes outcomes as a YAML document under a top-level "results" key.
func Write(w io.Writer, outcomes []Outcome) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := struct {
		Results []Outcome `yaml:"results"`
	}{Results: outcomes}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("batch: encoding results: %w", err)
	}

	return enc.Close()
}
