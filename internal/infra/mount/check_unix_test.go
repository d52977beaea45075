//go:build linux || darwin

package mount

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "phosync/internal/errors"
)

func TestCheckRootIsUnmounted(t *testing.T) {
	err := Check("/")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.UnmountedDestination))
}

func TestCheckMissingDirectory(t *testing.T) {
	err := Check("/definitely/not/a/real/backup/volume")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.UnmountedDestination))
}

func TestCheckFileIsNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := Check(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.UnmountedDestination))
}

func TestListMountPointsIncludesRoot(t *testing.T) {
	points, err := listMountPoints()
	require.NoError(t, err)
	assert.Contains(t, points, "/")
}
