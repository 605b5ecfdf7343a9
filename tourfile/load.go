package tourfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docent-dev/docent"
)

// SupportedVersion is the tour file schema version this package reads.
const SupportedVersion = 1

var placements = map[string]docent.Placement{
	"":       docent.PlacementAuto,
	"auto":   docent.PlacementAuto,
	"top":    docent.PlacementTop,
	"bottom": docent.PlacementBottom,
	"left":   docent.PlacementLeft,
	"right":  docent.PlacementRight,
}

// Load reads a tour definition from disk.
func Load(path string) (*Definition, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("tour file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tour file %s: %w", path, err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse tour file %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes and validates a tour definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	if d.Version != SupportedVersion {
		return docent.NewConfigurationError("tour file",
			fmt.Sprintf("unsupported version %d (want %d)", d.Version, SupportedVersion))
	}

	d.Tour.Name = strings.TrimSpace(d.Tour.Name)
	if d.Tour.Name == "" {
		return docent.NewConfigurationError("tour file", "tour name is required")
	}
	d.Tour.Description = strings.TrimSpace(d.Tour.Description)

	if len(d.Steps) == 0 {
		return docent.NewConfigurationError("tour file", "at least one step is required")
	}

	seen := make(map[string]int, len(d.Steps))
	for i := range d.Steps {
		if err := normalizeStep(&d.Steps[i]); err != nil {
			return docent.NewConfigurationError("tour file",
				fmt.Sprintf("step %d: %v", i+1, err))
		}
		id := d.Steps[i].ID
		if id == "" {
			continue
		}
		if prev, dup := seen[id]; dup {
			return docent.NewConfigurationError("tour file",
				fmt.Sprintf("steps %d and %d share id %q", prev+1, i+1, id))
		}
		seen[id] = i
	}

	return nil
}

func normalizeStep(step *StepDef) error {
	step.ID = strings.TrimSpace(step.ID)
	step.Target = strings.TrimSpace(step.Target)
	step.Placement = strings.ToLower(strings.TrimSpace(step.Placement))

	// An empty query can never resolve, so in a file it is a mistake,
	// unlike the runtime degraded state for a mounted-later target.
	if step.Target == "" {
		return fmt.Errorf("target is required")
	}

	if _, ok := placements[step.Placement]; !ok {
		return fmt.Errorf("unknown placement %q", step.Placement)
	}

	if step.AutoAdvanceMS < 0 {
		return fmt.Errorf("auto_advance_ms must not be negative")
	}

	for j := range step.Actions {
		step.Actions[j].ID = strings.TrimSpace(step.Actions[j].ID)
		step.Actions[j].Label = strings.TrimSpace(step.Actions[j].Label)
		if step.Actions[j].Label == "" {
			return fmt.Errorf("action %d: label is required", j+1)
		}
	}

	return nil
}
