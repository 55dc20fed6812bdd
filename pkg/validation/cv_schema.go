package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// cvContentSchema describes the CV document posted by the builder. Unknown
// fields are allowed; field types are enforced before decoding.
const cvContentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personal"],
  "properties": {
    "title": {"type": ["string", "null"]},
    "personal": {
      "type": "object",
      "required": ["fullName"],
      "properties": {
        "fullName": {"type": "string", "minLength": 1},
        "email": {"type": ["string", "null"]},
        "phone": {"type": ["string", "null"]},
        "location": {"type": ["string", "null"]},
        "headline": {"type": ["string", "null"]},
        "summary": {"type": ["string", "null"]}
      }
    },
    "experience": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": ["string", "null"]},
          "position": {"type": ["string", "null"]},
          "startDate": {"type": ["string", "null"]},
          "endDate": {"type": ["string", "null"]},
          "currentlyWorking": {"type": ["boolean", "null"]},
          "description": {"type": ["string", "null"]}
        }
      }
    },
    "education": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "school": {"type": ["string", "null"]},
          "degree": {"type": ["string", "null"]},
          "field": {"type": ["string", "null"]},
          "graduationDate": {"type": ["string", "null"]},
          "description": {"type": ["string", "null"]}
        }
      }
    },
    "skills": {
      "type": ["array", "null"],
      "items": {"type": "string"}
    }
  }
}`

var cvSchemaLoader = gojsonschema.NewStringLoader(cvContentSchema)

// SchemaError lists the JSON Schema violations of a document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "invalid CV content: " + strings.Join(e.Violations, "; ")
}

// ValidateCVDocument checks raw CV JSON against the CV content schema.
func ValidateCVDocument(raw []byte) error {
	result, err := gojsonschema.Validate(cvSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate cv document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return &SchemaError{Violations: violations}
}
