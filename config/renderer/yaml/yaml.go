package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrNilDocument is returned when a nil document is passed to Render.
var ErrNilDocument = errors.New("nil document")

// Renderer implements config.Renderer interface for YAML output.
type Renderer struct{}

// NewRenderer creates a new YAML renderer instance.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render serializes the document to YAML. The output is deterministic for a
// given document: map keys are emitted in sorted order, so a rewritten
// dbt_project.yml is stable across runs with the same overrides.
func (r *Renderer) Render(doc any) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return out, nil
}
