package common

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func TestNewConfigInputSource(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/roster.yml", []byte("server: http://roster.local:3002\ncoordinator: Pat\nstrict: true\n"), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	source, err := NewConfigInputSource(fs, "/roster.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server, err := source.String("server")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "http://roster.local:3002", server; e != g {
		t.Errorf("server: expected %s, got %s", e, g)
	}

	strict, err := source.Bool("strict")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strict {
		t.Errorf("strict: expected true")
	}

	if _, err := NewConfigInputSource(fs, "/roster.toml"); err == nil {
		t.Errorf("err: expected an error for unknown extension, got nil")
	}
}
