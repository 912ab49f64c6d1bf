package storage

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		methodCall   func(*Manager) (string, error)
		expectedPath func() string
		name         string
	}{
		{
			name: "GetDataDir returns xdg data path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetDataDir()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, AppName)
			},
		},
		{
			name: "GetLogPath returns log file inside data dir",
			methodCall: func(m *Manager) (string, error) {
				return m.GetLogPath()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, AppName, LogFilename)
			},
		},
		{
			name: "GetHistoryPath returns history file inside data dir",
			methodCall: func(m *Manager) (string, error) {
				return m.GetHistoryPath()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, AppName, HistoryFilename)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager := New(afero.NewMemMapFs())

			actualPath, err := tt.methodCall(manager)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath(), actualPath)
		})
	}
}

func TestGetDataDirCreatesDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	manager := New(fs)

	dataDir, err := manager.GetDataDir()
	require.NoError(t, err)

	exists, err := afero.DirExists(fs, dataDir)
	require.NoError(t, err)
	assert.True(t, exists)
}
