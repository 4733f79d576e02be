package firestore

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/bornholm/roster/internal/core/port/testsuite"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

func TestTaskStore(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		client, err := firestore.NewClient(context.Background(), "roster-test")
		if err != nil {
			return nil, errors.WithStack(err)
		}

		t.Cleanup(func() {
			client.Close()
		})

		// Each test case gets its own collection
		return NewTaskStore(client, "tasks-"+xid.New().String()), nil
	})
}
