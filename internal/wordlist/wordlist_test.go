// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	words := Default()
	assert.Len(t, words, 23)
	assert.Equal(t, "admin", words[0])
	assert.Equal(t, "java", words[22])

	// Callers get their own copy.
	words[0] = "changed"
	assert.Equal(t, "admin", Default()[0])
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    []string
	}{
		{
			name:    "trims and skips blank lines",
			content: ptr("  alpha \n\n beta\n\t\ngamma"),
			want:    []string{"alpha", "beta", "gamma"},
		},
		{
			name:    "keeps file order",
			content: ptr("zulu\nalpha\nmike\n"),
			want:    []string{"zulu", "alpha", "mike"},
		},
		{
			name:    "empty file falls back to default",
			content: ptr(""),
			want:    Default(),
		},
		{
			name:    "whitespace only falls back to default",
			content: ptr("  \n\t\n"),
			want:    Default(),
		},
		{
			name: "missing file falls back to default",
			want: Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wordlist.txt")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}
			assert.Equal(t, tt.want, Load(path))
		})
	}
}

func TestEnsureFile(t *testing.T) {
	t.Run("writes defaults when missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "wordlist.txt")
		require.NoError(t, EnsureFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "admin\nuser", string(data[:10]))
		assert.Equal(t, Default(), Load(path))
	})

	t.Run("leaves existing file alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wordlist.txt")
		require.NoError(t, os.WriteFile(path, []byte("custom\n"), 0o644))
		require.NoError(t, EnsureFile(path))
		assert.Equal(t, []string{"custom"}, Load(path))
	})
}

func ptr(s string) *string { return &s }
