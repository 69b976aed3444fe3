package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coursehub/internal/client/migrations"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection would get its own :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, "."))
	return db
}

func TestSaveAndLoadSession(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.SaveSession(ctx, Session{Token: "abc", Email: "ada@example.com"}))

	s, err := r.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Session{Token: "abc", Email: "ada@example.com"}, s)

	tok, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}

func TestSession_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	s, err := r.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	tok, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestSaveSession_Replaces(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.SaveSession(ctx, Session{Token: "old", Email: "old@example.com"}))
	require.NoError(t, r.SaveSession(ctx, Session{Token: "new", Email: "new@example.com"}))

	s, err := r.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Session{Token: "new", Email: "new@example.com"}, s)
}

func TestSaveSession_EmptyTokenRejected(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	assert.ErrorContains(t, r.SaveSession(ctx, Session{Email: "ada@example.com"}), "empty token")

	s, err := r.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSession_EmailWithoutTokenIsNoSession(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES (?, ?)`, EmailKey, []byte("ada@example.com"))
	require.NoError(t, err)

	s, err := r.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.SaveSession(ctx, Session{Token: "abc", Email: "ada@example.com"}))
	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Clear(ctx))

	s, err := r.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestClosedDB_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	assert.ErrorContains(t, r.SaveSession(ctx, Session{Token: "t"}), "save session")

	_, err := r.Session(ctx)
	assert.ErrorContains(t, err, "load session")

	_, err = r.Token(ctx)
	assert.ErrorContains(t, err, "load token")

	assert.ErrorContains(t, r.Clear(ctx), "clear session")
}
