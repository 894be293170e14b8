package postgres

import (
	"context"
	"database/sql"
	"testing"

	"roster/internal/errors"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	t.Run("applies embedded migrations", func(t *testing.T) {
		var gotDir string
		gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
			gotDir = dir

			return nil
		}

		require.NoError(t, RunMigrations(context.Background(), nil))
		assert.Equal(t, ".", gotDir)
	})

	t.Run("wraps goose failure", func(t *testing.T) {
		gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
			return errors.New("relation already exists")
		}

		err := RunMigrations(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "apply migrations")
	})
}
