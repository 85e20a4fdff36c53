package api

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request body schema names.
const (
	schemaSalary       = "salary"
	schemaCostOfLiving = "cost_of_living"
	schemaTravel       = "travel"
	schemaQuizScore    = "quiz_score"
	schemaQuizAnswer   = "quiz_answer"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var schemas = mustCompileSchemas()

func mustCompileSchemas() map[string]*gojsonschema.Schema {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		panic(fmt.Sprintf("api: read schemas: %v", err))
	}
	out := make(map[string]*gojsonschema.Schema, len(entries))
	for _, e := range entries {
		raw, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("api: read schema %s: %v", e.Name(), err))
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("api: compile schema %s: %v", e.Name(), err))
		}
		out[strings.TrimSuffix(e.Name(), ".json")] = s
	}
	return out
}

// validateBody checks body against the named schema.
func validateBody(name string, body []byte) error {
	const op = "api.validateBody"
	s, ok := schemas[name]
	if !ok {
		return WrapKind(op, ErrInternal, fmt.Errorf("unknown schema %q", name))
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return WrapKind(op, ErrBadRequest, err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		problems[i] = desc.String()
	}
	return &ValidationError{Schema: name, Problems: problems}
}
