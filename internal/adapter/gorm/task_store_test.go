package gorm

import (
	"fmt"
	"testing"

	"github.com/bornholm/roster/internal/core/port"
	"github.com/bornholm/roster/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestTaskStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

		db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		internalDB, err := db.DB()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		internalDB.SetMaxOpenConns(1)

		t.Cleanup(func() {
			internalDB.Close()
		})

		return NewTaskStore(db), nil
	})
}
