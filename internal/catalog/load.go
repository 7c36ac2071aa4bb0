package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankFile is the on-disk shape of a question bank.
type bankFile struct {
	Bank      string     `json:"bank"`
	Questions []Question `json:"questions"`
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// bankSchema returns the compiled bank schema, compiling it once.
func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(bankSchemaJSON)))
		if err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("bank.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile("bank.schema.json")
	})
	return schema, schemaErr
}

// Load parses and validates a question bank from raw JSON.
func Load(data []byte) (*Catalog, error) {
	sch, err := bankSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid bank JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("bank schema validation: %w", err)
	}

	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if f.Bank == "" {
		f.Bank = "default"
	}
	return New(f.Bank, f.Questions), nil
}

// LoadFile reads and validates a question bank file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Load(data)
}
