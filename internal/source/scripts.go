package source

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kk-code-lab/pick/internal/menu"
)

// Scripts lists the scripts map of ./package.json and runs entries
// with `bun run <name>`.
type Scripts struct {
	// Dir is the directory holding package.json; empty means cwd.
	Dir string
}

func (Scripts) Layout() menu.Layout {
	return menu.Layout{
		Title:        "📦 Package Scripts",
		Noun:         "scripts",
		NameDivisor:  3,
		SelectVerb:   "Select",
		RunVerb:      "🚀 Running script",
		EmptyMessage: "No scripts found in package.json",
	}
}

func (s Scripts) Fetch(ctx context.Context) Result {
	data, err := os.ReadFile(filepath.Join(s.Dir, "package.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return Result{EmptyReason: "No package.json in the current directory."}
	}
	if err != nil {
		return Result{EmptyReason: "Cannot read package.json: " + err.Error()}
	}
	return parsePackageScripts(data)
}

func (Scripts) Run(name string) error {
	return runForeground("bun", "run", name)
}

func parsePackageScripts(data []byte) Result {
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Result{EmptyReason: "package.json is not valid JSON."}
	}
	if len(pkg.Scripts) == 0 {
		return Result{EmptyReason: "No scripts defined in package.json."}
	}

	names := make([]string, 0, len(pkg.Scripts))
	for name := range pkg.Scripts {
		names = append(names, name)
	}
	coll := collate.New(language.Und)
	sort.Slice(names, func(i, j int) bool {
		return coll.CompareString(names[i], names[j]) < 0
	})

	items := make([]menu.Item, 0, len(names))
	for _, name := range names {
		items = append(items, menu.Item{Name: name, Detail: pkg.Scripts[name]})
	}
	return Result{Items: items}
}
