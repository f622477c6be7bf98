package tools

import (
	"strconv"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

type operands struct {
	a float64
	b float64
}

func bindOperands(input pub_models.Input) (operands, error) {
	a, err := number(input, "a")
	if err != nil {
		return operands{}, err
	}
	b, err := number(input, "b")
	if err != nil {
		return operands{}, err
	}
	return operands{a: a, b: b}, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func operandsSchema() *pub_models.InputSchema {
	return &pub_models.InputSchema{
		Type: "object",
		Properties: map[string]pub_models.ParameterObject{
			"a": {
				Type:        "number",
				Description: "The first number.",
			},
			"b": {
				Type:        "number",
				Description: "The second number.",
			},
		},
		Required: []string{"a", "b"},
	}
}

type AddTool pub_models.Specification

var Add = AddTool{
	Name:        "add",
	Description: "Add two numbers.",
	Inputs:      operandsSchema(),
}

func (t AddTool) Call(input pub_models.Input) (string, error) {
	ops, err := bindOperands(input)
	if err != nil {
		return "", err
	}
	return formatNumber(ops.a + ops.b), nil
}

func (t AddTool) Specification() pub_models.Specification {
	return pub_models.Specification(Add)
}

type SubtractTool pub_models.Specification

var Subtract = SubtractTool{
	Name:        "subtract",
	Description: "Subtract two numbers, returning a - b.",
	Inputs:      operandsSchema(),
}

func (t SubtractTool) Call(input pub_models.Input) (string, error) {
	ops, err := bindOperands(input)
	if err != nil {
		return "", err
	}
	return formatNumber(ops.a - ops.b), nil
}

func (t SubtractTool) Specification() pub_models.Specification {
	return pub_models.Specification(Subtract)
}
