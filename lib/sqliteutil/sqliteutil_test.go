package sqliteutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")

	db, err := OpenDB(`create table if not exists item (name text not null);`, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("insert into item (name) values (?)", "a")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("select count(*) from item").Scan(&count))
	require.Equal(t, 1, count)
}

func TestOpenDBRequiresPath(t *testing.T) {
	_, err := OpenDB("", "")
	require.Error(t, err)
}

func TestOpenDBBadSchema(t *testing.T) {
	_, err := OpenDB("create tabel nope", filepath.Join(t.TempDir(), "out.db"))
	require.Error(t, err)
}
