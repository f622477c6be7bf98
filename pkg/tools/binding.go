package tools

import (
	"encoding/json"
	"fmt"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// number reads a numeric input. Inputs decoded from json carry float64, but
// tools invoked programmatically may pass integers.
func number(input pub_models.Input, name string) (float64, error) {
	raw, ok := input[name]
	if !ok {
		return 0, fmt.Errorf("%v is required", name)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%v must be a number: %w", name, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%v must be a number, got: %T", name, raw)
	}
}

func str(input pub_models.Input, name string) (string, error) {
	raw, ok := input[name]
	if !ok {
		return "", fmt.Errorf("%v is required", name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%v must be a string, got: %T", name, raw)
	}
	return s, nil
}
