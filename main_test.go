package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

type goldenFileTestCase struct {
	expect          string
	givenArgs       string
	givenEnvs       map[string]string
	wantOutExactly  string
	wantOutContains string
	wantStatusCode  int
}

// setupConfDir with the conversations directory in place, so that no
// creation notice is printed on stdout
func setupConfDir(t *testing.T) string {
	t.Helper()
	confDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(confDir, "conversations"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	t.Setenv("TOOLOOP_CONFIG_DIR", confDir)
	return confDir
}

func runGoldenFileTests(t *testing.T, tcs []goldenFileTestCase) {
	t.Helper()
	for _, tc := range tcs {
		t.Run(tc.expect, func(t *testing.T) {
			setupConfDir(t)
			for k, v := range tc.givenEnvs {
				t.Setenv(k, v)
			}
			var gotStatusCode int
			gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
				gotStatusCode = run(strings.Split(tc.givenArgs, " "))
			})

			testboil.FailTestIfDiff(t, gotStatusCode, tc.wantStatusCode)
			if tc.wantOutContains != "" {
				testboil.AssertStringContains(t, gotStdout, tc.wantOutContains)
			}
			if tc.wantOutExactly != "" {
				testboil.FailTestIfDiff(t, gotStdout, tc.wantOutExactly)
			}
		})
	}
}

// Test_goldenFile_calibration of the golden file tests to ensure they work
func Test_goldenFile_calibration(t *testing.T) {
	runGoldenFileTests(t, []goldenFileTestCase{
		{
			expect: "base-test",
			// The `test` chat model echoes the last message, unless it is
			// asked to call a tool
			givenArgs:      "-r -cm test compute test",
			wantOutExactly: "test\n",
		},
		{
			expect:         "Multiple tests-test",
			givenArgs:      "-r -cm test c another test",
			wantOutExactly: "another test\n",
		},
	})
}

func Test_goldenFile_COMPUTE(t *testing.T) {
	runGoldenFileTests(t, []goldenFileTestCase{
		{
			expect:         "add",
			givenArgs:      `-r -cm test compute tool add {"a":10,"b":5}`,
			wantOutExactly: "15\n",
		},
		{
			expect:         "subtract",
			givenArgs:      `-raw -chat-model test compute tool subtract {"a":20,"b":5}`,
			wantOutExactly: "15\n",
		},
		{
			expect:         "unknown tool is reported back to the model",
			givenArgs:       `-r -cm test compute tool multiply {"a":2,"b":3}`,
			wantOutContains: "ERROR: unknown tool call: multiply\n",
		},
		{
			expect:          "pretty output shows the tool call",
			givenArgs:       `-cm test compute tool add {"a":1,"b":2}`,
			givenEnvs:       map[string]string{"NO_COLOR": "true"},
			wantOutContains: "Call: 'add', inputs: [ 'a': '1','b': '2' ]",
		},
	})
}

func Test_goldenFile_errors(t *testing.T) {
	runGoldenFileTests(t, []goldenFileTestCase{
		{
			expect:         "unknown command",
			givenArgs:      "-cm test photo a cat",
			wantStatusCode: 1,
		},
		{
			expect:         "mutually exclusive flags",
			givenArgs:      "-cm test -chat-model test compute hello",
			wantStatusCode: 1,
		},
		{
			expect:         "bad timeout",
			givenArgs:      "-cm test -to soon compute hello",
			wantStatusCode: 1,
		},
	})
}

func Test_goldenFile_COMPUTE_saves_conversation(t *testing.T) {
	confDir := setupConfDir(t)
	testboil.CaptureStdout(t, func(t *testing.T) {
		if code := run(strings.Split("-r -cm test compute hello", " ")); code != 0 {
			t.Errorf("expected status code 0, got: %v", code)
		}
	})
	entries, err := os.ReadDir(filepath.Join(confDir, "conversations"))
	if err != nil {
		t.Fatalf("failed to read conversations: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 saved conversation, got: %v", len(entries))
	}
}
