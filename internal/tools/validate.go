package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// Validate the input of a call against the declared schema of the tool. Checks
// required fields, rejects undeclared fields and verifies primitive types.
func Validate(spec pub_models.Specification, input pub_models.Input) error {
	if spec.Inputs == nil {
		return nil
	}
	for _, field := range spec.Inputs.Required {
		if _, ok := input[field]; !ok {
			return fmt.Errorf("missing required argument '%v'", field)
		}
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		param, declared := spec.Inputs.Properties[k]
		if !declared {
			if len(spec.Inputs.Properties) > 0 {
				return fmt.Errorf("unknown argument '%v'", k)
			}
			continue
		}
		if param.Type == "" {
			continue
		}
		if !matchesType(param.Type, input[k]) {
			return fmt.Errorf("argument '%v' must be of type '%v', got: %T", k, param.Type, input[k])
		}
		if len(param.Enum) > 0 {
			s, _ := input[k].(string)
			if !contains(param.Enum, s) {
				return fmt.Errorf("argument '%v' must be one of %v", k, param.Enum)
			}
		}
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

func matchesType(expected string, v any) bool {
	switch expected {
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "number":
		_, ok := asFloat(v)
		return ok
	case "integer":
		f, ok := asFloat(v)
		return ok && f == math.Trunc(f)
	case "array":
		_, ok := v.([]any)
		return ok
	case "object":
		switch v.(type) {
		case map[string]any, pub_models.Input:
			return true
		}
		return false
	default:
		return true
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
