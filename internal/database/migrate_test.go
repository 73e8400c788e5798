package database

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_MigrationsAreOrderedAndReversible(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	var versions []uint
	version, err := src.First()
	for err == nil {
		versions = append(versions, version)

		up, _, upErr := src.ReadUp(version)
		require.NoError(t, upErr, "version %d has no up migration", version)
		body, readErr := io.ReadAll(up)
		up.Close()
		require.NoError(t, readErr)
		assert.NotEmpty(t, body)

		down, _, downErr := src.ReadDown(version)
		require.NoError(t, downErr, "version %d has no down migration", version)
		down.Close()

		version, err = src.Next(version)
	}
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, []uint{1, 2}, versions)
}

func TestSource_SchemaDefinesForeignKeyAndPriceCheck(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	up, _, err := src.ReadUp(1)
	require.NoError(t, err)
	defer up.Close()
	body, err := io.ReadAll(up)
	require.NoError(t, err)

	assert.Contains(t, string(body), "REFERENCES genres (id)")
	assert.Contains(t, string(body), "CHECK (price >= 0)")
}
