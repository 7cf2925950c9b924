package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarancss/selene/lib/store"
	"github.com/tarancss/selene/lib/store/sqlite"
)

func TestNew(t *testing.T) {
	dh, err := New(NONE, "")
	require.NoError(t, err)
	assert.Nil(t, dh)
	assert.NoError(t, Close(dh))

	_, err = New("cassandra", "")
	assert.ErrorIs(t, err, store.ErrUnknownType)

	dh, err = New(SQLITE, filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	assert.IsType(t, &sqlite.SQLite{}, dh)
	assert.NoError(t, Close(dh))
}
