package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name              string
		defaultValue      bool
		arguments         []string
		expected          bool
		expectedPositions []string
		expectError       bool
	}{
		{
			name:         "defaults_to_false",
			defaultValue: false,
			arguments:    []string{},
			expected:     false,
		},
		{
			name:         "sets_true_without_value",
			defaultValue: false,
			arguments:    []string{"--feature"},
			expected:     true,
		},
		{
			name:         "sets_true_with_shorthand",
			defaultValue: false,
			arguments:    []string{"-f"},
			expected:     true,
		},
		{
			name:         "sets_false_with_equals",
			defaultValue: true,
			arguments:    []string{"--feature=false"},
			expected:     false,
		},
		{
			name:         "sets_false_with_no_literal",
			defaultValue: true,
			arguments:    []string{"--feature=no"},
			expected:     false,
		},
		{
			name:         "sets_true_with_on_literal",
			defaultValue: false,
			arguments:    []string{"--feature=on"},
			expected:     true,
		},
		{
			name:              "long_form_keeps_following_literal_positional",
			defaultValue:      false,
			arguments:         []string{"--feature", "n"},
			expected:          true,
			expectedPositions: []string{"n"},
		},
		{
			name:              "shorthand_keeps_following_literal_positional",
			defaultValue:      false,
			arguments:         []string{"-f", "n"},
			expected:          true,
			expectedPositions: []string{"n"},
		},
		{
			name:         "rejects_unknown_literal_with_equals",
			defaultValue: false,
			arguments:    []string{"--feature=maybe"},
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "boolean-test"}
			flagSet := command.Flags()
			flagValue := !testCase.defaultValue
			registerBooleanFlag(flagSet, &flagValue, "feature", "f", testCase.defaultValue, "toggle feature behaviour")
			parseErr := command.ParseFlags(testCase.arguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
			positional := flagSet.Args()
			if len(positional) != len(testCase.expectedPositions) {
				t.Fatalf("expected positional arguments %v, got %v", testCase.expectedPositions, positional)
			}
			for index := range positional {
				if positional[index] != testCase.expectedPositions[index] {
					t.Fatalf("expected positional arguments %v, got %v", testCase.expectedPositions, positional)
				}
			}
		})
	}
}
