package utils

import (
	"errors"
	"os"
	"testing"
)

func TestPrompt(t *testing.T) {
	testCases := []struct {
		name           string
		args           []string
		stdin          string
		expectedPrompt string
		expectedError  bool
	}{
		{
			name:          "No arguments and no stdin",
			args:          []string{},
			expectedError: true,
		},
		{
			name:           "Arguments only",
			args:           []string{"what", "is", "10 + 5?"},
			expectedPrompt: "what is 10 + 5?",
		},
		{
			name:           "Stdin only",
			args:           []string{},
			stdin:          "input from stdin\n",
			expectedPrompt: "input from stdin",
		},
		{
			name:           "Arguments and stdin",
			args:           []string{"summarize:"},
			stdin:          "input from stdin",
			expectedPrompt: "summarize:\ninput from stdin",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.stdin != "" {
				oldStdin := os.Stdin
				t.Cleanup(func() { os.Stdin = oldStdin })
				r, w, err := os.Pipe()
				if err != nil {
					t.Fatal(err)
				}
				os.Stdin = r
				if _, err := w.WriteString(tc.stdin); err != nil {
					t.Fatal(err)
				}
				w.Close()
			}

			prompt, err := Prompt(tc.args)
			if tc.expectedError {
				if !errors.Is(err, ErrNoPrompt) {
					t.Errorf("Expected ErrNoPrompt, got: %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if prompt != tc.expectedPrompt {
				t.Errorf("Prompt mismatch. Expected: %q, Got: %q", tc.expectedPrompt, prompt)
			}
		})
	}
}
