package host

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "manifold-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestErrorLogAppendAndList(t *testing.T) {
	log, err := NewErrorLog(openTestDB(t))
	require.NoError(t, err)

	base := time.Now().Add(-time.Minute)
	first := QueryError{ID: "e1", Timestamp: base, Kind: KindUser, Trace: "serialization failure"}
	second := QueryError{ID: "e2", Timestamp: base.Add(time.Second), Kind: KindSystem, Trace: "state store failure"}

	require.NoError(t, log.Append(first))
	require.NoError(t, log.Append(second))

	records, err := log.List(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, "e2", records[0].ID)
	assert.Equal(t, KindSystem, records[0].Kind)
	assert.Equal(t, "e1", records[1].ID)
	assert.Equal(t, "serialization failure", records[1].Trace)
}

func TestErrorLogListByKind(t *testing.T) {
	log, err := NewErrorLog(openTestDB(t))
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, log.Append(QueryError{ID: "u1", Timestamp: now, Kind: KindUser, Trace: "t"}))
	require.NoError(t, log.Append(QueryError{ID: "s1", Timestamp: now, Kind: KindSystem, Trace: "t"}))
	require.NoError(t, log.Append(QueryError{ID: "u2", Timestamp: now, Kind: KindUser, Trace: "t"}))

	records, err := log.ListByKind(KindUser, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, KindUser, rec.Kind)
	}
}

func TestErrorLogPrune(t *testing.T) {
	log, err := NewErrorLog(openTestDB(t))
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, log.Append(QueryError{ID: "old", Timestamp: now.Add(-48 * time.Hour), Kind: KindUnknown, Trace: "t"}))
	require.NoError(t, log.Append(QueryError{ID: "recent", Timestamp: now, Kind: KindUnknown, Trace: "t"}))

	pruned, err := log.Prune(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	records, err := log.List(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "recent", records[0].ID)
}

func TestErrorLogDuplicateIDRejected(t *testing.T) {
	log, err := NewErrorLog(openTestDB(t))
	require.NoError(t, err)

	rec := QueryError{ID: "dup", Timestamp: time.Now(), Kind: KindUnknown, Trace: "t"}
	require.NoError(t, log.Append(rec))
	require.Error(t, log.Append(rec))
}
