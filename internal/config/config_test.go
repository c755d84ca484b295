package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
brand = "Acme"
tagline = "We make things"
footer_note = "Acme Inc"
addr = ":9090"

[[section]]
heading = "About"
body = "Hello."

[[section]]
heading = "Contact"
body = "Write us."
`

func TestParseValid(t *testing.T) {
	site, err := Parse([]byte(validTOML))
	require.NoError(t, err)

	assert.Equal(t, "Acme", site.Brand)
	assert.Equal(t, ":9090", site.Addr)
	require.Len(t, site.Section, 2)
	assert.Equal(t, "Contact", site.Section[1].Heading)
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("brand = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse site config")
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{name: "empty brand", toml: `brand = "  "`},
		{name: "section without heading", toml: validTOML + "\n[[section]]\nbody = \"orphan\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestParseNormalizes(t *testing.T) {
	site, err := Parse([]byte("brand = \"  Acme  \"\naddr = \"  \"\n"))
	require.NoError(t, err)

	assert.Equal(t, "Acme", site.Brand)
	assert.Equal(t, ":8080", site.Addr, "blank addr falls back to default")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	site, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), site)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(path, []byte(validTOML), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", site.Brand)
}

func TestDefaultMatchesBakedContent(t *testing.T) {
	site := Default()
	content := site.Content()

	assert.Equal(t, "Lumen", content.Brand)
	require.NotEmpty(t, content.Sections)
	assert.Equal(t, "About", content.Sections[0].Heading)
}

func TestContentRoundTrip(t *testing.T) {
	site, err := Parse([]byte(validTOML))
	require.NoError(t, err)

	content := site.Content()
	require.Len(t, content.Sections, 2)
	assert.Equal(t, "About", content.Sections[0].Heading)
	assert.Equal(t, "Write us.", content.Sections[1].Body)
}
