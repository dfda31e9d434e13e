package jsonstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// projectSchema describes the canonical project file shape. Legacy records
// may omit priority, so it is optional but constrained when present.
const projectSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["todos"],
  "properties": {
    "name": { "type": "string" },
    "todos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["done", "title"],
        "properties": {
          "done": { "type": "boolean" },
          "title": { "type": "string", "minLength": 1, "maxLength": 500 },
          "priority": { "enum": ["low", "medium", "high"] }
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("project.schema.json", strings.NewReader(projectSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile("project.schema.json")
	})
	return schema, schemaErr
}

// ValidationResult collects structural problems found in a project file.
type ValidationResult struct {
	Valid      bool
	Errors     []string
	Warnings   []string
	UsedSchema bool
}

// ValidateBytes checks raw file content against the project schema.
// Content that is not JSON at all is a single fatal error. If the schema
// cannot be compiled, minimal shape checks run instead.
func ValidateBytes(data []byte) *ValidationResult {
	result := &ValidationResult{Valid: true}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("invalid JSON: %v", err))
		return result
	}

	sch, err := compiledSchema()
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("schema unavailable, using minimal checks: %v", err))
		validateMinimal(doc, result)
		return result
	}

	result.UsedSchema = true
	if err := sch.Validate(doc); err != nil {
		result.Valid = false
		collectSchemaErrors(result, err)
	}
	return result
}

func collectSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(result, cause)
	}
}

// validateMinimal is the fallback when no compiled schema is available.
func validateMinimal(doc interface{}, result *ValidationResult) {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, "project file must be a JSON object")
		return
	}
	todos, ok := obj["todos"]
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, "missing required field: todos")
		return
	}
	list, ok := todos.([]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, "todos must be an array")
		return
	}
	for i, raw := range list {
		task, ok := raw.(map[string]interface{})
		if !ok {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("todos[%d] must be an object", i))
			continue
		}
		if _, ok := task["title"].(string); !ok {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("todos[%d] missing string title", i))
		}
		if _, ok := task["done"].(bool); !ok {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("todos[%d] missing boolean done", i))
		}
		if p, present := task["priority"]; present {
			s, ok := p.(string)
			if !ok || (s != "low" && s != "medium" && s != "high") {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("todos[%d] has invalid priority", i))
			}
		}
	}
}
