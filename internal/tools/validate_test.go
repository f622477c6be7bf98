package tools

import (
	"encoding/json"
	"testing"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

func TestValidate(t *testing.T) {
	spec := pub_models.Specification{
		Name: "t",
		Inputs: &pub_models.InputSchema{
			Type: "object",
			Properties: map[string]pub_models.ParameterObject{
				"n":    {Type: "number"},
				"i":    {Type: "integer"},
				"s":    {Type: "string"},
				"b":    {Type: "boolean"},
				"arr":  {Type: "array"},
				"obj":  {Type: "object"},
				"mode": {Type: "string", Enum: []string{"fast", "slow"}},
			},
			Required: []string{"n"},
		},
	}
	tcs := []struct {
		desc    string
		given   pub_models.Input
		wantErr bool
	}{
		{desc: "only required", given: pub_models.Input{"n": 1.5}},
		{desc: "all valid", given: pub_models.Input{
			"n": 1, "i": 2.0, "s": "x", "b": true, "arr": []any{1}, "obj": map[string]any{}, "mode": "fast",
		}},
		{desc: "json number", given: pub_models.Input{"n": json.Number("3")}},
		{desc: "missing required", given: pub_models.Input{"s": "x"}, wantErr: true},
		{desc: "non numeric", given: pub_models.Input{"n": "ten"}, wantErr: true},
		{desc: "fractional integer", given: pub_models.Input{"n": 1, "i": 2.5}, wantErr: true},
		{desc: "wrong bool", given: pub_models.Input{"n": 1, "b": "true"}, wantErr: true},
		{desc: "unknown field", given: pub_models.Input{"n": 1, "extra": 1}, wantErr: true},
		{desc: "enum mismatch", given: pub_models.Input{"n": 1, "mode": "medium"}, wantErr: true},
	}
	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			err := Validate(spec, tc.given)
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_NoSchema(t *testing.T) {
	if err := Validate(pub_models.Specification{Name: "free"}, pub_models.Input{"anything": 1}); err != nil {
		t.Fatalf("expected no error without schema, got: %v", err)
	}
}
