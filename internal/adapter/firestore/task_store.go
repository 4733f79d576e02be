package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TaskStore struct {
	client     *firestore.Client
	collection string
}

// ListTasks implements port.TaskStore.
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	iter := s.tasks().OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	tasks := make([]model.Task, 0)

	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}

		if err != nil {
			return nil, errors.WithStack(err)
		}

		var doc taskDocument
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "could not decode task '%s'", snapshot.Ref.ID)
		}

		tasks = append(tasks, doc.toModel(snapshot.Ref.ID))
	}

	return tasks, nil
}

// GetTask implements port.TaskStore.
func (s *TaskStore) GetTask(ctx context.Context, id model.TaskID) (model.Task, error) {
	snapshot, err := s.tasks().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Task{}, errors.WithStack(port.ErrNotFound)
		}

		return model.Task{}, errors.WithStack(err)
	}

	var doc taskDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return model.Task{}, errors.Wrapf(err, "could not decode task '%s'", id)
	}

	return doc.toModel(snapshot.Ref.ID), nil
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if task.ID == "" {
		task.ID = model.NewTaskID()
	}

	doc := fromTask(task)
	doc.Version = 1

	if _, err := s.tasks().Doc(string(task.ID)).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return model.Task{}, errors.Wrapf(err, "task '%s' already exists", task.ID)
		}

		return model.Task{}, errors.WithStack(err)
	}

	return doc.toModel(string(task.ID)), nil
}

// ReplaceTask implements port.TaskStore.
func (s *TaskStore) ReplaceTask(ctx context.Context, id model.TaskID, replacement port.TaskReplacement) (model.Task, error) {
	ref := s.tasks().Doc(string(id))

	var replaced model.Task

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snapshot, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		var current taskDocument
		if err := snapshot.DataTo(&current); err != nil {
			return errors.Wrapf(err, "could not decode task '%s'", id)
		}

		if replacement.ExpectedVersion != nil && *replacement.ExpectedVersion != current.Version {
			return errors.Wrapf(port.ErrConflict, "task '%s' is at version %d, expected %d", id, current.Version, *replacement.ExpectedVersion)
		}

		next := replacement.Apply(current.toModel(ref.ID))
		next.Version = current.Version + 1

		if err := tx.Set(ref, fromTask(next)); err != nil {
			return errors.WithStack(err)
		}

		replaced = next

		return nil
	})
	if err != nil {
		return model.Task{}, errors.WithStack(err)
	}

	return replaced, nil
}

// Close releases the underlying Firestore client.
func (s *TaskStore) Close() error {
	return s.client.Close()
}

func (s *TaskStore) tasks() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

func NewTaskStore(client *firestore.Client, collection string) *TaskStore {
	return &TaskStore{
		client:     client,
		collection: collection,
	}
}

var _ port.TaskStore = &TaskStore{}
