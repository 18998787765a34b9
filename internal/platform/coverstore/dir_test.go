package coverstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_Exists(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "cover.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "nested.png"), []byte("png"), 0o644))

	d := NewDir(root)
	ctx := context.Background()

	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "present", file: "cover.jpg", want: true},
		{name: "nested", file: "sub/nested.png", want: true},
		{name: "missing", file: "nope.jpg", want: false},
		{name: "empty", file: "", want: false},
		{name: "directory", file: "sub", want: false},
		{name: "escapes root", file: "../cover.jpg", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Exists(ctx, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDir_Default(t *testing.T) {
	assert.Equal(t, DefaultDir, NewDir("").root)
}
