package gorm

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TaskStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// ListTasks implements port.TaskStore.
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var rows []*Task

	if err := db.WithContext(ctx).Order("created_at asc, id asc").Find(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toModel())
	}

	return tasks, nil
}

// GetTask implements port.TaskStore.
func (s *TaskStore) GetTask(ctx context.Context, id model.TaskID) (model.Task, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return model.Task{}, errors.WithStack(err)
	}

	var row Task

	if err := db.WithContext(ctx).First(&row, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Task{}, errors.WithStack(port.ErrNotFound)
		}

		return model.Task{}, errors.WithStack(err)
	}

	return row.toModel(), nil
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if task.ID == "" {
		task.ID = model.NewTaskID()
	}

	row := fromTask(task)
	row.Version = 1

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(row).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return model.Task{}, errors.WithStack(err)
	}

	return row.toModel(), nil
}

// ReplaceTask implements port.TaskStore.
func (s *TaskStore) ReplaceTask(ctx context.Context, id model.TaskID, replacement port.TaskReplacement) (model.Task, error) {
	var replaced model.Task

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var row Task

		if err := db.First(&row, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if replacement.ExpectedVersion != nil && *replacement.ExpectedVersion != row.Version {
			return errors.Wrapf(port.ErrConflict, "task '%s' is at version %d, expected %d", id, row.Version, *replacement.ExpectedVersion)
		}

		next := fromTask(replacement.Apply(row.toModel()))
		next.Version = row.Version + 1

		res := db.Model(&Task{}).
			Where("id = ? AND version = ?", row.ID, row.Version).
			Select("lead", "volunteers", "slots_needed", "notes", "updated_by", "updated_at", "version").
			Updates(next)
		if res.Error != nil {
			return errors.WithStack(res.Error)
		}

		if res.RowsAffected == 0 {
			return errors.Wrapf(port.ErrConflict, "task '%s' changed during replace", id)
		}

		replaced = next.toModel()

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return model.Task{}, errors.WithStack(err)
	}

	return replaced, nil
}

func (s *TaskStore) withRetry(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := 500 * time.Millisecond
	maxRetries := 10
	retries := 0

	for {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := fn(ctx, tx); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			if retries >= maxRetries {
				return errors.WithStack(err)
			}

			var sqliteErr *sqlite3.Error
			if errors.As(err, &sqliteErr) {
				if !slices.Contains(codes, sqliteErr.Code()) {
					return errors.WithStack(err)
				}

				slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

				retries++

				select {
				case <-ctx.Done():
					return errors.WithStack(ctx.Err())
				case <-time.After(backoff):
				}

				backoff *= 2
				continue
			}

			return errors.WithStack(err)
		}

		return nil
	}
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{
		getDatabase: createGetDatabase(db, &Task{}),
	}
}

var _ port.TaskStore = &TaskStore{}

func createGetDatabase(db *gorm.DB, models ...any) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
