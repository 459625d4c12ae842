package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultExclusions(t *testing.T) {
	exclusions := DefaultExclusions()
	expected := []string{".git", ".vscode", "__pycache__", "node_modules"}
	if diff := cmp.Diff(expected, exclusions.Names()); diff != "" {
		t.Fatalf("unexpected default exclusions (-want +got):\n%s", diff)
	}
	for _, name := range expected {
		if !exclusions.Contains(name) {
			t.Fatalf("expected %s to be excluded", name)
		}
	}
}

func TestExclusionSetMatchesExactNames(t *testing.T) {
	exclusions := NewExclusionSet("node_modules", "", ".git")
	testCases := []struct {
		name     string
		expected bool
	}{
		{name: "node_modules", expected: true},
		{name: ".git", expected: true},
		{name: "Node_Modules", expected: false},
		{name: "node_modules2", expected: false},
		{name: ".gitignore", expected: false},
		{name: "", expected: false},
	}
	for _, testCase := range testCases {
		if actual := exclusions.Contains(testCase.name); actual != testCase.expected {
			t.Fatalf("Contains(%q): expected %t, got %t", testCase.name, testCase.expected, actual)
		}
	}
	if exclusions.Len() != 2 {
		t.Fatalf("expected empty names to be dropped, got %d entries", exclusions.Len())
	}
}

func TestExclusionSetIsNotAffectedByCallerSlices(t *testing.T) {
	names := []string{"vendor"}
	exclusions := NewExclusionSet(names...)
	names[0] = "dist"
	returned := exclusions.Names()
	returned[0] = "build"
	if !exclusions.Contains("vendor") || exclusions.Contains("dist") || exclusions.Contains("build") {
		t.Fatalf("exclusion set changed through a caller-owned slice: %v", exclusions.Names())
	}
}

func TestZeroExclusionSetExcludesNothing(t *testing.T) {
	var exclusions ExclusionSet
	if exclusions.Contains("node_modules") || exclusions.Len() != 0 {
		t.Fatalf("zero value should exclude nothing")
	}
}
