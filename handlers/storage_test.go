package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTempUploadPathStripsDirectoryComponents(t *testing.T) {
	p := tempUploadPath("../../etc/passwd")
	assert.Equal(t, filepath.Join(os.TempDir(), "passwd"), p)
	assert.True(t, strings.HasPrefix(p, os.TempDir()))

	assert.Equal(t, filepath.Join(os.TempDir(), "resume.pdf"), tempUploadPath("resume.pdf"))
}
