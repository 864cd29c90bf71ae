package harness

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "db"), 0600, bbolt.DefaultOptions)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunRoundTrip(t *testing.T) {
	db := openTestDB(t)

	saved := &Run{
		Name:      "baseline",
		Report:    "Data: 9, Buffer: 64, Duration:42 ns, Vector: 0, Exceptions: 1",
		Bench:     "BenchmarkTransform/data=9/buffer=64/vector=0/exceptions=1 1 42 ns/op",
		CreatedAt: time.Date(2022, 3, 14, 15, 9, 26, 0, time.UTC),
	}
	require.NoError(t, saved.Save(db))

	got, err := GetRun(db, "baseline")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved, got)
}

func TestGetRunMissing(t *testing.T) {
	db := openTestDB(t)

	got, err := GetRun(db, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListRuns(t *testing.T) {
	db := openTestDB(t)

	runs, err := ListRuns(db)
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, (&Run{Name: "a", Report: "x"}).Save(db))
	require.NoError(t, (&Run{Name: "b", Report: "y"}).Save(db))

	runs, err = ListRuns(db)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "a", runs[0].Name)
	assert.Equal(t, "b", runs[1].Name)
}

func TestDeleteRuns(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, (&Run{Name: "a"}).Save(db))
	require.NoError(t, (&Run{Name: "b"}).Save(db))

	deleted, err := DeleteRuns(db, "a", "missing")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, deleted)

	runs, err := ListRuns(db)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "b", runs[0].Name)
}

func TestDeleteAllRuns(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, (&Run{Name: "a"}).Save(db))
	require.NoError(t, DeleteAllRuns(db))

	runs, err := ListRuns(db)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunConfigurations(t *testing.T) {
	assert.Equal(t, 0, (&Run{}).Configurations())
	assert.Equal(t, 1, (&Run{Report: "one line"}).Configurations())
	assert.Equal(t, 3, (&Run{Report: "a\nb\nc"}).Configurations())
	assert.Equal(t, 3, (&Run{Report: "a\nb\nc\n"}).Configurations())
}
