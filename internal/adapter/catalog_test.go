package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	parts, err := LoadCatalog("")
	require.NoError(t, err)
	require.Len(t, parts, 14)

	require.Equal(t, "HEAD", parts[0].ID)
	require.Equal(t, "Head", parts[0].Label)
	require.Equal(t, 12.0, parts[0].Position)
	require.Contains(t, parts[0].Keywords, "headache")
	require.NotEmpty(t, parts[0].Description)

	require.Equal(t, "FEET", parts[13].ID)
	require.Contains(t, parts[8].Keywords, "upper arm")
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.yaml")
	content := `parts:
  - id: TAIL
    label: Tail
    position: 99
    keywords: [tail, wag]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	parts, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	require.Equal(t, "TAIL", parts[0].ID)
	require.Equal(t, []string{"tail", "wag"}, parts[0].Keywords)
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = ParseCatalog([]byte("parts: [unterminated"))
	require.Error(t, err)
}
