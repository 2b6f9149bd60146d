package normalize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const contactSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["id", "l"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"l": {"type": "string", "minLength": 1},
		"fileAsStr": {"type": "string"},
		"t": {"type": "string"},
		"rev": {"type": "number"},
		"d": {"type": "number"},
		"_attrs": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

const folderSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"name": {"type": "string"},
		"l": {"type": "string"},
		"color": {"type": "integer"},
		"n": {"type": "integer", "minimum": 0},
		"view": {"type": "string"},
		"owner": {"type": "string"},
		"perm": {"type": "string"},
		"uuid": {"type": "string"},
		"acl": {
			"type": "object",
			"properties": {
				"grant": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["zid", "perm"],
						"properties": {
							"zid": {"type": "string"},
							"d": {"type": "string"},
							"perm": {"type": "string"}
						}
					}
				}
			}
		},
		"folder": {"type": "array", "items": {"$ref": "#"}},
		"link": {"type": "array", "items": {"$ref": "#"}}
	}
}`

var (
	compileOnce   sync.Once
	contactSchema *jsonschema.Schema
	folderSchema  *jsonschema.Schema
	compileErr    error
)

// schemas compiles the embedded contact and folder schemas exactly once.
// Compilation of a constant schema cannot fail in a correct build, but the
// error is still propagated to callers instead of panicking.
func schemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()

		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(contactSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal contact schema: %w", err)
			return
		}
		if err = c.AddResource("contact.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add contact schema: %w", err)
			return
		}

		doc, err = jsonschema.UnmarshalJSON(strings.NewReader(folderSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal folder schema: %w", err)
			return
		}
		if err = c.AddResource("folder.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add folder schema: %w", err)
			return
		}

		if contactSchema, err = c.Compile("contact.schema.json"); err != nil {
			compileErr = fmt.Errorf("compile contact schema: %w", err)
			return
		}
		if folderSchema, err = c.Compile("folder.schema.json"); err != nil {
			compileErr = fmt.Errorf("compile folder schema: %w", err)
			return
		}
	})

	return contactSchema, folderSchema, compileErr
}
