package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/trr/internal/utils"
)

type configTestCase struct {
	name          string
	globalContent string
	localContent  string
	explicitPath  string
	explicitBody  string
	expectSort    string
	expectStrict  *bool
	expectCopy    *bool
	expectError   bool
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:          "local_overrides_global",
			globalContent: "tree:\n  sort: none\n  strict: true\n  copy: true\n",
			localContent:  "tree:\n  sort: NAME\n  copy: false\n",
			expectSort:    "name",
			expectStrict:  boolPointer(true),
			expectCopy:    boolPointer(false),
		},
		{
			name:          "explicit_path_replaces_local",
			globalContent: "tree:\n  strict: true\n",
			localContent:  "tree:\n  sort: name\n",
			explicitPath:  "custom.yaml",
			explicitBody:  "tree:\n  sort: none\n",
			expectSort:    "none",
			expectStrict:  boolPointer(true),
		},
		{
			name:       "no_files_leaves_defaults_unset",
			expectSort: "",
		},
		{
			name:          "global_only",
			globalContent: "tree:\n  copy: true\n",
			expectCopy:    boolPointer(true),
		},
		{
			name:         "invalid_sort_rejected",
			localContent: "tree:\n  sort: size\n",
			expectError:  true,
		},
		{
			name:         "missing_explicit_file_rejected",
			explicitPath: "absent.yaml",
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.GlobalConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.ConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitBody != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte(testCase.explicitBody), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
				HomeDirectory:    homeDir,
			})
			if testCase.expectError {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}

			if loadedConfig.Tree.Sort != testCase.expectSort {
				t.Fatalf("expected sort %q, got %q", testCase.expectSort, loadedConfig.Tree.Sort)
			}
			assertBoolPointer(t, "strict", testCase.expectStrict, loadedConfig.Tree.Strict)
			assertBoolPointer(t, "copy", testCase.expectCopy, loadedConfig.Tree.Copy)
		})
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	workingDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(workingDir, utils.ConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir, HomeDirectory: t.TempDir()}); err == nil {
		t.Fatalf("expected error when configuration path is a directory")
	}
}

func TestTreeConfigurationMergeDoesNotAlias(t *testing.T) {
	base := ApplicationConfiguration{}
	override := ApplicationConfiguration{Tree: TreeConfiguration{Strict: boolPointer(true)}}
	merged := base.Merge(override)
	*override.Tree.Strict = false
	if merged.Tree.Strict == nil || !*merged.Tree.Strict {
		t.Fatalf("merged configuration shares pointers with its source")
	}
}

func assertBoolPointer(t *testing.T, label string, expected *bool, actual *bool) {
	t.Helper()
	if expected == nil {
		if actual != nil {
			t.Fatalf("expected no %s override, got %t", label, *actual)
		}
		return
	}
	if actual == nil || *actual != *expected {
		t.Fatalf("unexpected %s value", label)
	}
}
