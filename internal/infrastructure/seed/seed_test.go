package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmanzanog/stock-sim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	instruments := Default()

	require.Len(t, instruments, 3)
	assert.Equal(t, "AAPL", instruments[0].Ticker)
	assert.Equal(t, "150.12", instruments[0].Price.String())

	// The built-in catalog must always seed a valid registry.
	registry, err := domain.NewRegistry(instruments)
	require.NoError(t, err)
	assert.Equal(t, 3, registry.Len())
}

func TestLoad_Success(t *testing.T) {
	path := writeSeedFile(t, `[
		{"ticker": "aapl", "name": "Apple Inc.", "price": "150.12", "volume": 10},
		{"ticker": "TSLA", "name": "Tesla, Inc.", "price": "244.98", "volume": 25}
	]`)

	instruments, err := Load(path)
	require.NoError(t, err)
	require.Len(t, instruments, 2)

	assert.Equal(t, "AAPL", instruments[0].Ticker, "tickers are canonicalized on load")
	assert.Equal(t, "150.12", instruments[0].Price.String())
	assert.Equal(t, int64(10), instruments[0].AvailableVolume)
	assert.Equal(t, "TSLA", instruments[1].Ticker)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeSeedFile(t, `{"not": "an array"`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyCatalog(t *testing.T) {
	path := writeSeedFile(t, `[]`)

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no instruments")
}

func TestLoad_InvalidEntries(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "unparseable price",
			content: `[{"ticker": "AAPL", "name": "Apple Inc.", "price": "cheap", "volume": 10}]`,
		},
		{
			name:    "non-positive price",
			content: `[{"ticker": "AAPL", "name": "Apple Inc.", "price": "0", "volume": 10}]`,
		},
		{
			name:    "negative volume",
			content: `[{"ticker": "AAPL", "name": "Apple Inc.", "price": "150.12", "volume": -1}]`,
		},
		{
			name:    "missing name",
			content: `[{"ticker": "AAPL", "price": "150.12", "volume": 10}]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSeedFile(t, tc.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
