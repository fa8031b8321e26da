package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestParsePackageScriptsSortsNames(t *testing.T) {
	data := []byte(`{
		"name": "demo",
		"scripts": {
			"test": "vitest run",
			"build": "tsc -b",
			"dev": "vite"
		}
	}`)

	result := parsePackageScripts(data)
	if result.EmptyReason != "" {
		t.Fatalf("unexpected empty reason %q", result.EmptyReason)
	}
	want := []string{"build", "dev", "test"}
	if len(result.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(result.Items))
	}
	for i, name := range want {
		if result.Items[i].Name != name {
			t.Fatalf("item %d: got %q want %q", i, result.Items[i].Name, name)
		}
	}
	if result.Items[0].Detail != "tsc -b" {
		t.Fatalf("expected command as detail, got %q", result.Items[0].Detail)
	}
}

func TestParsePackageScriptsMalformedJSON(t *testing.T) {
	result := parsePackageScripts([]byte(`{"scripts": `))
	if len(result.Items) != 0 {
		t.Fatalf("malformed JSON must yield no items")
	}
	if result.EmptyReason != "package.json is not valid JSON." {
		t.Fatalf("unexpected reason %q", result.EmptyReason)
	}
}

func TestParsePackageScriptsNoScriptsSection(t *testing.T) {
	result := parsePackageScripts([]byte(`{"name": "demo"}`))
	if result.EmptyReason != "No scripts defined in package.json." {
		t.Fatalf("unexpected reason %q", result.EmptyReason)
	}
}

func TestScriptsFetchMissingFile(t *testing.T) {
	s := Scripts{Dir: t.TempDir()}
	result := s.Fetch(context.Background())
	if len(result.Items) != 0 {
		t.Fatalf("expected no items without package.json")
	}
	if result.EmptyReason != "No package.json in the current directory." {
		t.Fatalf("unexpected reason %q", result.EmptyReason)
	}
}

func TestScriptsFetchReadsPackageJSON(t *testing.T) {
	dir := t.TempDir()
	content := `{"scripts": {"start": "node server.js"}}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}

	result := Scripts{Dir: dir}.Fetch(context.Background())
	if len(result.Items) != 1 || result.Items[0].Name != "start" {
		t.Fatalf("unexpected items %+v", result.Items)
	}
}
