package main

import (
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func Test_goldenFile_HELP_prints_usage(t *testing.T) {
	setupConfDir(t)
	var gotStatusCode int
	gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
		gotStatusCode = run(strings.Split("help", " "))
	})

	testboil.FailTestIfDiff(t, gotStatusCode, 0)
	testboil.FailTestIfDiff(t, gotStdout, usage)
}

func Test_goldenFile_no_command_prints_usage(t *testing.T) {
	setupConfDir(t)
	var gotStatusCode int
	gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
		gotStatusCode = run([]string{"-r"})
	})

	testboil.FailTestIfDiff(t, gotStatusCode, 1)
	testboil.AssertStringContains(t, gotStdout, "Usage: tooloop [flags] <command>")
}
