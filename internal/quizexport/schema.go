package quizexport

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiled returns the compiled document schema, compiling it once.
func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quiz-document.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Validate checks doc against the embedded document schema. A failure
// here means the generator produced a malformed document and is a bug,
// not an input error.
func Validate(doc quizgen.Document) error {
	schema, err := compiled()
	if err != nil {
		return err
	}

	// The validator wants a parsed JSON value, so round-trip the
	// document through encoding/json.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("reparse document: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("document failed schema validation: %w", err)
	}
	return nil
}
