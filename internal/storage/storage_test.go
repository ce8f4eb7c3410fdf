package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		path    func(dir string) string
		wantErr bool
	}{
		{name: "new file", path: func(dir string) string { return filepath.Join(dir, "darts.sqlite") }},
		{name: "missing directory", path: func(dir string) string { return filepath.Join(dir, "missing", "darts.sqlite") }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(tt.path(t.TempDir()))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, db)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, db.Stats().MaxOpenConnections)
			assert.NoError(t, db.Close())
		})
	}
}

func Test_buildSource(t *testing.T) {
	assert.Equal(t, "file:darts.sqlite?cache=shared&_foreign_keys=on", buildSource("darts.sqlite"))
}
