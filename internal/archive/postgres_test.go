package archive_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testcontainers "github.com/testcontainers/testcontainers-go"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/telegram-toys/tljson/internal/archive"
)

const (
	pgImage    = "postgres:16-alpine"
	pgDatabase = "tljsontest"
	pgUser     = "tljsonuser"
	pgPassword = "tljsonpass"
)

// setupPG spins up a Postgres container and returns a connected store.
// Skips the test when Docker is not available.
func setupPG(t *testing.T) (*archive.Postgres, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	pgc, err := tcpg.Run(ctx, pgImage,
		tcpg.WithDatabase(pgDatabase),
		tcpg.WithUsername(pgUser),
		tcpg.WithPassword(pgPassword),
		tcpg.BasicWaitStrategies(),
	)
	require.NoError(t, err, "start postgres container")

	connStr, err := pgc.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	store := archive.NewPostgres(pool, "")
	require.NoError(t, store.EnsureSchema(ctx))

	cleanup := func() {
		pool.Close()
		if err := pgc.Terminate(ctx); err != nil {
			t.Logf("cleanup: terminate container: %v", err)
		}
	}
	return store, cleanup
}

func TestPostgres_PutGet(t *testing.T) {
	store, cleanup := setupPG(t)
	defer cleanup()
	ctx := context.Background()

	rec := testRecord("p1")
	require.NoError(t, store.Put(ctx, rec))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, rec.Key, got.Key)
	assert.Equal(t, rec.TypeID, got.TypeID)
	assert.Equal(t, rec.Dump, got.Dump)
	assert.True(t, rec.StoredAt.Equal(got.StoredAt))
}

func TestPostgres_Get_Miss(t *testing.T) {
	store, cleanup := setupPG(t)
	defer cleanup()

	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, archive.ErrMiss)
}

func TestPostgres_Upsert(t *testing.T) {
	store, cleanup := setupPG(t)
	defer cleanup()
	ctx := context.Background()

	rec := testRecord("p2")
	require.NoError(t, store.Put(ctx, rec))

	rec.Dump = `{"_":"example.com/pkg.Thing","n":2}`
	rec.StoredAt = rec.StoredAt.Add(time.Hour)
	require.NoError(t, store.Put(ctx, rec))

	got, err := store.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, rec.Dump, got.Dump)

	n, err := store.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPostgres_Delete(t *testing.T) {
	store, cleanup := setupPG(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testRecord("p3")))
	require.NoError(t, store.Delete(ctx, "p3"))

	_, err := store.Get(ctx, "p3")
	require.ErrorIs(t, err, archive.ErrMiss)
}

func TestPostgres_CountByType(t *testing.T) {
	store, cleanup := setupPG(t)
	defer cleanup()
	ctx := context.Background()

	a := testRecord("c1")
	b := testRecord("c2")
	b.TypeID = "example.com/pkg.Other"
	require.NoError(t, store.Put(ctx, a))
	require.NoError(t, store.Put(ctx, b))

	n, err := store.Count(ctx, "example.com/pkg.Other")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestPostgres_Ping(t *testing.T) {
	store, cleanup := setupPG(t)
	defer cleanup()
	require.NoError(t, store.Ping(context.Background()))
	assert.NotNil(t, store.Pool())
}
