package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestNewLogger_DebugLevel(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("NO_COLOR", "true")
	var buf bytes.Buffer
	NewLogger(&buf).Debug("model step", "step", 1, "err", errors.New("boom"))
	testboil.AssertStringContains(t, buf.String(), "model step")
	testboil.AssertStringContains(t, buf.String(), "boom")
}

func TestNewLogger_QuietByDefault(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	NewLogger(&buf).Debug("hidden")
	testboil.FailTestIfDiff(t, buf.String(), "")
}
