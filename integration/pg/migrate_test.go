package pg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tashoecraft/rx-go/integration/pg"
)

func TestMigrate_NilPool(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, pg.Migrate(context.Background(), nil, nil), pg.ErrNilPool)
}

func TestMigrations_EmbeddedContent(t *testing.T) {
	t.Parallel()

	data, err := pg.Migrations.ReadFile("migrations/00001_notify_helpers.sql")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "CREATE OR REPLACE FUNCTION rx_notify(")
	assert.Contains(t, content, "CREATE OR REPLACE FUNCTION rx_notify_row()")
	assert.Contains(t, content, "-- +goose Up")
	assert.Contains(t, content, "-- +goose Down")
}
