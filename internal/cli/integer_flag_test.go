package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterBoundedIntegerFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		minimum      int
		arguments    []string
		expected     int
		expectSet    bool
		expectError  bool
		expectString string
	}{
		{
			name:         "keeps_default_when_absent",
			minimum:      1,
			arguments:    []string{},
			expected:     4,
			expectSet:    false,
			expectString: "unset",
		},
		{
			name:         "parses_short_flag",
			minimum:      1,
			arguments:    []string{"-n", "2"},
			expected:     2,
			expectSet:    true,
			expectString: "2",
		},
		{
			name:         "parses_long_flag_with_equals",
			minimum:      0,
			arguments:    []string{"--number=0"},
			expected:     0,
			expectSet:    true,
			expectString: "0",
		},
		{
			name:        "rejects_below_minimum",
			minimum:     1,
			arguments:   []string{"--number", "0"},
			expected:    4,
			expectError: true,
		},
		{
			name:        "rejects_negative_value",
			minimum:     0,
			arguments:   []string{"-n", "-1"},
			expected:    4,
			expectError: true,
		},
		{
			name:        "rejects_non_integer",
			minimum:     1,
			arguments:   []string{"--number", "four"},
			expected:    4,
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			target := 4
			isSet := false
			command := &cobra.Command{Use: "test"}
			registerBoundedIntegerFlag(command.Flags(), &target, &isSet, "number", "n", testCase.minimum, "number flag")

			parseError := command.Flags().Parse(testCase.arguments)
			if testCase.expectError {
				if parseError == nil {
					t.Fatalf("expected parse error for %v", testCase.arguments)
				}
				return
			}
			if parseError != nil {
				t.Fatalf("unexpected parse error: %v", parseError)
			}
			if target != testCase.expected {
				t.Fatalf("expected %d, got %d", testCase.expected, target)
			}
			if isSet != testCase.expectSet {
				t.Fatalf("expected isSet %t, got %t", testCase.expectSet, isSet)
			}
			if got := command.Flags().Lookup("number").Value.String(); got != testCase.expectString {
				t.Fatalf("expected string %q, got %q", testCase.expectString, got)
			}
		})
	}
}

func TestBuildRecursionSettingsImpliesPruneForExtensions(t *testing.T) {
	settings := buildRecursionSettings(treeOptions{indentWidth: 4, extensions: []string{"go"}})
	if !settings.Prune {
		t.Fatalf("expected extension filter to enable pruning")
	}
	if settings.MaxDepth != nil {
		t.Fatalf("expected unlimited depth")
	}
	if settings.SortOrder != "bytes" {
		t.Fatalf("expected byte ordering by default, got %q", settings.SortOrder)
	}

	settings = buildRecursionSettings(treeOptions{indentWidth: 4, maxDepth: 0, depthSet: true})
	if settings.Prune {
		t.Fatalf("expected pruning to stay disabled without filters")
	}
	if settings.MaxDepth == nil || *settings.MaxDepth != 0 {
		t.Fatalf("expected depth zero")
	}
}
