package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_ExplicitPath(t *testing.T) {
	path, err := Resolve("custom.yaml", 0)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if path != "custom.yaml" {
		t.Errorf("Expected explicit path to be kept, got %s", path)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name         string
		createFiles  []string
		searchPaths  []string
		expectedPath string
		expectFound  bool
	}{
		{
			name:         "yaml in current directory",
			createFiles:  []string{"config.yaml"},
			searchPaths:  []string{"config.yaml", "config.json"},
			expectedPath: "config.yaml",
			expectFound:  true,
		},
		{
			name:         "json fallback",
			createFiles:  []string{"config.json"},
			searchPaths:  []string{"config.yaml", "config.json"},
			expectedPath: "config.json",
			expectFound:  true,
		},
		{
			name:         "first match wins",
			createFiles:  []string{"config.yaml", "config.json"},
			searchPaths:  []string{"config.json", "config.yaml"},
			expectedPath: "config.json",
			expectFound:  true,
		},
		{
			name:        "file not found",
			searchPaths: []string{"config.yaml", "nonexistent/config.yaml"},
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			for _, file := range tt.createFiles {
				if err := os.WriteFile(filepath.Join(tmpDir, file), []byte("host: x"), 0644); err != nil {
					t.Fatalf("Failed to create file: %v", err)
				}
			}

			candidates := make([]string, 0, len(tt.searchPaths))
			for _, path := range tt.searchPaths {
				candidates = append(candidates, filepath.Join(tmpDir, path))
			}

			path, err := find(candidates, 0)

			if (err == nil) != tt.expectFound {
				t.Fatalf("Expected found=%v, got err=%v", tt.expectFound, err)
			}

			if tt.expectFound && path != filepath.Join(tmpDir, tt.expectedPath) {
				t.Errorf("Expected path %s, got %s", filepath.Join(tmpDir, tt.expectedPath), path)
			}
		})
	}
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths()

	if len(paths) < 2 {
		t.Fatalf("Expected at least the local candidates, got %v", paths)
	}
	if paths[0] != filepath.Join(".", "config.yaml") {
		t.Errorf("Expected local config.yaml first, got %s", paths[0])
	}
	if paths[1] != filepath.Join(".", "config.json") {
		t.Errorf("Expected local config.json second, got %s", paths[1])
	}
}
