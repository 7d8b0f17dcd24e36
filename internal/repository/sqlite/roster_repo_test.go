package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-bot/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "payroll-bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func sampleRoster(t *testing.T) *domain.Roster {
	t.Helper()
	r := domain.NewRoster()
	bob := domain.NewEmployee("Bob", true, 30)
	bob.RecordWork(10)
	bob.Pay()
	bob.RecordWork(2)
	require.NoError(t, r.Add(bob))
	require.NoError(t, r.Add(domain.NewEmployee("Sal", false, 100000)))
	require.NoError(t, r.Add(domain.NewEmployee("Ann", true, 18)))
	return r
}

func TestRosterRepoRoundTrip(t *testing.T) {
	repo := NewRosterRepo(openTestDB(t))

	empty, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count())

	r := sampleRoster(t)
	require.NoError(t, repo.Save(r))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, r.Record(), got.Record())
}

func TestRosterRepoSaveReplacesSnapshot(t *testing.T) {
	repo := NewRosterRepo(openTestDB(t))
	require.NoError(t, repo.Save(sampleRoster(t)))

	smaller := domain.NewRoster()
	require.NoError(t, smaller.Add(domain.NewEmployee("Zed", false, 52000)))
	require.NoError(t, repo.Save(smaller))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, 1, got.Count())
	assert.Equal(t, "Zed", got.All()[0].Name())
}

func TestRosterRepoLoadSkipsDuplicateRows(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO employees (position, name, hourly, wage, owed, paid) VALUES
		(0, 'Ben', 0, 100000, 8190, 0),
		(1, 'Ben', 1, 12, 0, 0),
		(2, 'Kyle', 1, 40, 16000, 0)`)
	require.NoError(t, err)

	got, err := NewRosterRepo(db).Load()
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count())

	ben, err := got.Find("Ben")
	require.NoError(t, err)
	assert.Equal(t, 100000, ben.Wage())
}

func TestRosterRepoUnavailable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "payroll-bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewRosterRepo(db)

	_, err = repo.Load()
	assert.ErrorIs(t, err, domain.ErrIOFailure, "table was never migrated")

	require.NoError(t, db.Close())
	assert.ErrorIs(t, repo.Save(sampleRoster(t)), domain.ErrIOFailure)
}
