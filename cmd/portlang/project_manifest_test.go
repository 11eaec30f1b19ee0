package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "portlang.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write portlang.toml: %v", err)
	}
	return path
}

func TestLoadProjectManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `# test manifest
[package]
name = "demo"

[sources]
dir = "portfolios"
`)

	manifest, ok, err := loadProjectManifest(root)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found")
	}
	if manifest.Config.Package.Name != "demo" {
		t.Fatalf("package name = %q, want demo", manifest.Config.Package.Name)
	}
	want := filepath.Join(root, "portfolios")
	if got := manifest.SourceDir(); got != want {
		t.Fatalf("SourceDir() = %q, want %q", got, want)
	}
}

func TestLoadProjectManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[package]
name = "demo"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	manifest, ok, err := loadProjectManifest(nested)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found from nested dir")
	}
	if manifest.Root != root {
		t.Fatalf("manifest.Root = %q, want %q", manifest.Root, root)
	}
	// без [sources].dir каталог источников совпадает с корнем
	if got := manifest.SourceDir(); got != root {
		t.Fatalf("SourceDir() = %q, want root %q", got, root)
	}
}

func TestLoadProjectConfigRejectsMissingName(t *testing.T) {
	root := t.TempDir()

	cases := []struct {
		name string
		data string
	}{
		{"no package table", `[sources]
dir = "src"
`},
		{"empty name", `[package]
name = ""
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, root, tc.data)
			if _, err := loadProjectConfig(path); err == nil {
				t.Fatalf("expected error for manifest %q", tc.data)
			}
		})
	}
}
