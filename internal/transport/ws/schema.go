// internal/transport/ws/schema.go
package ws

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const commandSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["type"],
  "additionalProperties": false,
  "properties": {
    "seq":   {"type": "integer", "minimum": 0},
    "type":  {"enum": ["build", "sell", "upgrade", "connect", "start_wave", "toggle_sandbox",
                       "select_build", "toggle_connect", "click_ground", "click_node",
                       "confirm_preview", "cancel"]},
    "x":     {"type": "number"},
    "z":     {"type": "number"},
    "tower": {"type": "string", "minLength": 1},
    "node":  {"type": "integer", "minimum": 1},
    "a":     {"type": "integer", "minimum": 1},
    "b":     {"type": "integer", "minimum": 1}
  },
  "allOf": [
    {"if": {"properties": {"type": {"const": "build"}}},
     "then": {"required": ["x", "z", "tower"]}},
    {"if": {"properties": {"type": {"enum": ["sell", "upgrade", "click_node"]}}},
     "then": {"required": ["node"]}},
    {"if": {"properties": {"type": {"const": "connect"}}},
     "then": {"required": ["a", "b"]}},
    {"if": {"properties": {"type": {"const": "click_ground"}}},
     "then": {"required": ["x", "z"]}},
    {"if": {"properties": {"type": {"const": "select_build"}}},
     "then": {"required": ["tower"]}}
  ]
}`

var commandSchema = jsonschema.MustCompileString("command.schema.json", commandSchemaJSON)

// validateCommand checks a raw client message against the command schema.
func validateCommand(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := commandSchema.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
