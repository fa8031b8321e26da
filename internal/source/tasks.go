package source

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/pick/internal/menu"
)

const taskListTimeout = 10 * time.Second

var (
	taskLookPath = exec.LookPath
	taskList     = func(ctx context.Context) ([]byte, error) {
		return exec.CommandContext(ctx, "task", "--list-all").Output()
	}
)

// Tasks lists the tasks known to the task runner via a single
// `task --list-all` call. When the runner is not installed but a
// Taskfile.yml is present, the Taskfile itself is parsed so the
// listing still works; running then fails visibly at activation.
type Tasks struct {
	Dir string
}

func (Tasks) Layout() menu.Layout {
	return menu.Layout{
		Title:        "🚀 Task Menu",
		Noun:         "tasks",
		NameDivisor:  2,
		SelectVerb:   "Select",
		RunVerb:      "🚀 Running task",
		EmptyMessage: "No tasks found. Make sure you're in a directory with a Taskfile.yml",
	}
}

func (t Tasks) Fetch(ctx context.Context) Result {
	if _, err := taskLookPath("task"); err != nil {
		if result, ok := t.fetchFromTaskfile(); ok {
			return result
		}
		return Result{EmptyReason: "task not found on PATH."}
	}

	ctx, cancel := context.WithTimeout(ctx, taskListTimeout)
	defer cancel()

	out, err := taskList(ctx)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{EmptyReason: "task --list-all timed out."}
	}
	if err != nil {
		return Result{EmptyReason: "No tasks found. Make sure you're in a directory with a Taskfile.yml"}
	}

	items := parseTaskList(out)
	if len(items) == 0 {
		return Result{EmptyReason: "No tasks found. Make sure you're in a directory with a Taskfile.yml"}
	}
	return Result{Items: items}
}

func (Tasks) Run(name string) error {
	return runForeground("task", name)
}

// taskDescPattern splits "name:    description" on the run of spaces
// after the colon; single spaces belong to the name side.
var taskDescPattern = regexp.MustCompile(`:\s{2,}(.+)`)

// parseTaskList extracts (name, description) pairs from
// `task --list-all` output lines of the form "* name: description".
func parseTaskList(out []byte) []menu.Item {
	var items []menu.Item
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "* ") {
			continue
		}
		line = line[2:]

		if !strings.Contains(line, ":") {
			items = append(items, menu.Item{Name: strings.TrimSpace(line)})
			continue
		}

		if loc := taskDescPattern.FindStringSubmatchIndex(line); loc != nil {
			name := strings.TrimRight(strings.TrimRight(line[:loc[2]], " "), ":")
			desc := strings.TrimSpace(line[loc[2]:loc[3]])
			items = append(items, menu.Item{Name: name, Detail: desc})
			continue
		}

		name := strings.TrimSpace(strings.TrimRight(line, ":"))
		items = append(items, menu.Item{Name: name})
	}
	return items
}

// fetchFromTaskfile reads Taskfile.yml directly. Used only when the
// task binary is missing; includes are not resolved.
func (t Tasks) fetchFromTaskfile() (Result, bool) {
	var data []byte
	var err error
	for _, name := range []string{"Taskfile.yml", "Taskfile.yaml"} {
		data, err = os.ReadFile(filepath.Join(t.Dir, name))
		if err == nil {
			break
		}
	}
	if err != nil {
		return Result{}, false
	}

	items, perr := parseTaskfile(data)
	if perr != nil {
		return Result{EmptyReason: "Taskfile.yml is not valid YAML."}, true
	}
	if len(items) == 0 {
		return Result{EmptyReason: "Taskfile.yml defines no tasks."}, true
	}
	return Result{Items: items}, true
}

func parseTaskfile(data []byte) ([]menu.Item, error) {
	var doc struct {
		Tasks map[string]yaml.Node `yaml:"tasks"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.Tasks))
	for name := range doc.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]menu.Item, 0, len(names))
	for _, name := range names {
		node := doc.Tasks[name]
		var def struct {
			Desc string `yaml:"desc"`
		}
		if node.Kind == yaml.MappingNode {
			_ = node.Decode(&def)
		}
		items = append(items, menu.Item{Name: name, Detail: def.Desc})
	}
	return items, nil
}
