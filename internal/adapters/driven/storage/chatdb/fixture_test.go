package chatdb

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

const fixtureSchema = `
CREATE TABLE handle (
	ROWID INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL
);
CREATE TABLE message (
	ROWID INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT,
	attributedBody BLOB,
	handle_id INTEGER DEFAULT 0,
	date INTEGER
);`

// fixtureRow is one message row to insert.
type fixtureRow struct {
	Text     any    `db:"text"`
	Body     []byte `db:"body"`
	HandleID int64  `db:"handle_id"`
	Date     int64  `db:"date"`
}

// setupChatDB creates a chat.db-shaped database in a temp directory.
func setupChatDB(t *testing.T, handles []string, rows []fixtureRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chat.db")
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(fixtureSchema)
	require.NoError(t, err)

	for _, h := range handles {
		_, err := db.Exec(`INSERT INTO handle (id) VALUES (?)`, h)
		require.NoError(t, err)
	}
	for _, r := range rows {
		_, err := db.NamedExec(
			`INSERT INTO message (text, attributedBody, handle_id, date) VALUES (:text, :body, :handle_id, :date)`,
			r,
		)
		require.NoError(t, err)
	}
	return path
}

// seconds converts whole seconds since the store epoch to a raw date.
func seconds(s int64) int64 {
	return s * 1_000_000_000
}

// setupEmptyDB creates a valid SQLite file with an unrelated table.
func setupEmptyDB(t *testing.T, path string) error {
	t.Helper()
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.Exec(`CREATE TABLE unrelated (id INTEGER)`)
	return err
}
