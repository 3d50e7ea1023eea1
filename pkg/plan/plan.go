package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/mapmodel"
	"github.com/aretw0/lattice/pkg/registry"
	"github.com/aretw0/lattice/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Empty stage policies accepted in plan files.
const (
	EmptyStagesReset = "reset"
	EmptyStagesSkip  = "skip"
)

// Plan is the file representation of a transaction sequence.
type Plan struct {
	Name        string             `yaml:"name" json:"name"`
	Model       mapmodel.Model     `yaml:"model" json:"model"`
	EmptyStages string             `yaml:"empty_stages" json:"empty_stages"`
	Stages      [][]map[string]any `yaml:"stages" json:"stages"`

	// Schema lists the types the model must have once every stage has run.
	Schema map[string]string `yaml:"schema" json:"schema"`
}

// Step is a decoded stage entry.
type Step struct {
	ID            string `mapstructure:"id"`
	registry.Spec `mapstructure:",squash"`
}

// Load reads a plan file (YAML or JSON, chosen by extension).
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes a plan from data in the given format ("yaml" or "json").
func Parse(data []byte, format string) (*Plan, error) {
	var p Plan
	switch format {
	case "json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse plan json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse plan yaml: %w", err)
		}
	}
	return &p, nil
}

// DecodeStep converts a raw stage entry into a Step.
// Numbers are decoded leniently (JSON numbers are float64); unknown keys are rejected.
func DecodeStep(raw map[string]any) (Step, error) {
	var step Step
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &step,
	})
	if err != nil {
		return Step{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Step{}, fmt.Errorf("%w: %v", domain.ErrInvalidStep, err)
	}
	return step, nil
}

// Steps decodes every stage entry. Steps without an id get "s<stage>.<index>".
func (p *Plan) Steps() ([][]Step, error) {
	stages := make([][]Step, len(p.Stages))
	for i, stage := range p.Stages {
		stages[i] = make([]Step, 0, len(stage))
		for j, raw := range stage {
			step, err := DecodeStep(raw)
			if err != nil {
				return nil, fmt.Errorf("stage %d step %d: %w", i, j, err)
			}
			if step.ID == "" {
				step.ID = fmt.Sprintf("s%d.%d", i, j)
			}
			stages[i] = append(stages[i], step)
		}
	}
	return stages, nil
}

// ResultSchema parses the plan's schema section. It returns nil when the plan has none.
func (p *Plan) ResultSchema() (schema.Schema, error) {
	if len(p.Schema) == 0 {
		return nil, nil
	}
	s, err := schema.ParseTypeMap(p.Schema)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return s, nil
}
