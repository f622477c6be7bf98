package models

import "testing"

func TestCallPrettyPrint(t *testing.T) {
	c := Call{Name: "add", Inputs: Input{"b": 5, "a": 10}}
	want := "Call: 'add', inputs: [ 'a': '10','b': '5' ]"
	if got := c.PrettyPrint(); got != want {
		t.Errorf("PrettyPrint() = %q, want %q", got, want)
	}
}

func TestCallArgumentsJSON(t *testing.T) {
	if got := (Call{Name: "x"}).ArgumentsJSON(); got != "{}" {
		t.Errorf("expected empty object for nil inputs, got: %q", got)
	}
	got := Call{Name: "x", Inputs: Input{"filename": "notes"}}.ArgumentsJSON()
	if got != `{"filename":"notes"}` {
		t.Errorf("unexpected arguments: %q", got)
	}
}

func TestCallRawArguments(t *testing.T) {
	c := Call{Name: "add", RawArguments: `{"a": 1,`}
	if err := c.DecodeArguments(); err == nil {
		t.Fatal("expected error for undecodable arguments")
	}
	if got := c.ArgumentsJSON(); got != `{"a": 1,` {
		t.Errorf("expected the raw arguments to be sent back, got: %q", got)
	}
	if err := (Call{Name: "add", Inputs: Input{"a": 1}}).DecodeArguments(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInputSchemaPatch(t *testing.T) {
	is := InputSchema{}
	is.Patch()
	if is.Type != "object" || is.Required == nil || is.Properties == nil {
		t.Fatalf("expected patched schema, got: %+v", is)
	}
}
