package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"phosync/internal/domain"
)

func TestMirrorArgs(t *testing.T) {
	job := domain.FolderSyncJob{Source: "/pictures/photos", Dest: "/mnt/nas/photos", Label: "photos"}

	args := mirrorArgs(job, false)

	assert.Equal(t, "-avh", args[0])
	assert.NotContains(t, args, "-n")
	assert.Contains(t, args, "--size-only")
	assert.Contains(t, args, "--delete")
	assert.Contains(t, args, "--inplace")
	assert.Contains(t, args, "--progress")
	assert.Contains(t, args, "--stats")
	assert.Contains(t, args, ".DS_Store")
	assert.Contains(t, args, "._*")
	assert.Equal(t, "/pictures/photos/", args[len(args)-2])
	assert.Equal(t, "/mnt/nas/photos/", args[len(args)-1])
}

func TestMirrorArgsDryRun(t *testing.T) {
	job := domain.FolderSyncJob{Source: "/a", Dest: "/b"}
	assert.Equal(t, "-n", mirrorArgs(job, true)[1])
}

func TestWithTrailingSlash(t *testing.T) {
	tests := []struct {
		input string
		exp   string
	}{
		{"/pictures/photos", "/pictures/photos/"},
		{"/pictures/photos/", "/pictures/photos/"},
		{"/pictures/photos//", "/pictures/photos/"},
		{"/", "/"},
	}
	for _, test := range tests {
		assert.Equal(t, test.exp, withTrailingSlash(test.input), test.input)
	}
}
