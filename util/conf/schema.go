package conf

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema validates raw configuration values before they are merged.
type Schema struct {
	schema *gojsonschema.Schema
}

// NewSchema compiles a json schema document.
func NewSchema(document []byte) (*Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// ValidationError lists the schema violations of a configuration.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", strings.Join(e.Violations, "; "))
}

func (s *Schema) Validate(values map[string]any) error {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(values))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return &ValidationError{Violations: violations}
}
