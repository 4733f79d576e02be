package firestore

import (
	"context"
	"net/url"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const DefaultCollection = "tasks"

// NewTaskStoreFromURL creates a store from an uri shaped like
// firestore://<project>/<collection>?credentials=<file>.
func NewTaskStoreFromURL(ctx context.Context, u *url.URL) (*TaskStore, error) {
	projectID := u.Host
	if projectID == "" {
		return nil, errors.New("firestore uri: missing project id")
	}

	collection := strings.Trim(u.Path, "/")
	if collection == "" {
		collection = DefaultCollection
	}

	opts := make([]option.ClientOption, 0)
	if credentials := u.Query().Get("credentials"); credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not create firestore client")
	}

	return NewTaskStore(client, collection), nil
}
