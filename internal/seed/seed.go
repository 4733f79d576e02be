package seed

import (
	"context"
	"log/slog"

	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const DefaultActor = "seed"

type Entry struct {
	Day         string   `yaml:"day"`
	Time        string   `yaml:"time"`
	Section     string   `yaml:"section"`
	Task        string   `yaml:"task"`
	Lead        *string  `yaml:"lead"`
	LeadOffered bool     `yaml:"leadOffered"`
	Volunteers  []string `yaml:"volunteers"`
	SlotsNeeded *int     `yaml:"slotsNeeded"`
	Notes       string   `yaml:"notes"`
}

func (e Entry) NewTask() assignment.NewTask {
	return assignment.NewTask{
		Day:         e.Day,
		Time:        e.Time,
		Section:     e.Section,
		Task:        e.Task,
		Lead:        e.Lead,
		LeadOffered: e.LeadOffered,
		Volunteers:  e.Volunteers,
		SlotsNeeded: e.SlotsNeeded,
		Notes:       e.Notes,
	}
}

type File struct {
	Tasks []Entry `yaml:"tasks"`
}

// Load reads a seed file from the given filesystem.
func Load(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read seed file '%s'", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "could not parse seed file '%s'", path)
	}

	return &file, nil
}

// Apply creates every seeded task when the store holds none. It returns the
// number of created tasks.
func Apply(ctx context.Context, store port.TaskStore, engine *assignment.Engine, file *File, actor string) (int, error) {
	existing, err := store.ListTasks(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	if len(existing) > 0 {
		slog.DebugContext(ctx, "store is not empty, skipping seed", slog.Int("tasks", len(existing)))
		return 0, nil
	}

	// Every entry is validated before the first write so a bad file leaves
	// the store empty.
	tasks := make([]model.Task, 0, len(file.Tasks))

	for idx, entry := range file.Tasks {
		task, err := engine.CreateTask(entry.NewTask(), actor)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid seed entry #%d ('%s')", idx, entry.Task)
		}

		tasks = append(tasks, task)
	}

	created := 0

	for idx, task := range tasks {
		if _, err := store.CreateTask(ctx, task); err != nil {
			return created, errors.Wrapf(err, "could not create seed entry #%d ('%s')", idx, task.Task)
		}

		created++
	}

	slog.InfoContext(ctx, "event tasks seeded", slog.Int("tasks", created))

	return created, nil
}
