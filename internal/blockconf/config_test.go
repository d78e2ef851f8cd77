package blockconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

func TestLoadBytesYAML(t *testing.T) {
	data := []byte(`
version: ipv4
entries:
  - 192.168.1.7
  - 10.0.0.0/8
`)
	c, err := LoadBytes(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, xaddr.V4, c.Version())
	require.Len(t, c.Addresses(), 1)
	require.Len(t, c.Subnets(), 1)
	assert.Equal(t, "192.168.1.7", c.Addresses()[0].String())
	assert.Equal(t, "10.0.0.0/8", c.Subnets()[0].String())
}

func TestLoadBytesJSON(t *testing.T) {
	data := []byte(`{"version": "ipv6", "entries": ["2001:db8::1", "2001:db8:1::/48"]}`)
	c, err := LoadBytes(data, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, xaddr.V6, c.Version())
	require.Len(t, c.Addresses(), 1)
	require.Len(t, c.Subnets(), 1)
}

func TestLoadBytesCanonicalizesEntries(t *testing.T) {
	// 非规范 CIDR 条目在装入时清零主机位
	data := []byte(`{"version": "4", "entries": ["192.168.1.77/24"]}`)
	c, err := LoadBytes(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, c.Subnets(), 1)
	assert.Equal(t, "192.168.1.0/24", c.Subnets()[0].String())
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "bad version", data: `{"version": "both", "entries": []}`, format: FormatJSON},
		{name: "missing version", data: `{"entries": ["10.0.0.1"]}`, format: FormatJSON},
		{name: "bad entry", data: `{"version": "ipv4", "entries": ["300.0.0.1"]}`, format: FormatJSON},
		{name: "wrong family entry", data: `{"version": "ipv4", "entries": ["2001:db8::1"]}`, format: FormatJSON},
		{name: "bad cidr bits", data: `{"version": "ipv4", "entries": ["10.0.0.0/33"]}`, format: FormatJSON},
		{name: "malformed yaml", data: "version: [unclosed", format: FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadBytesUnsupportedFormat(t *testing.T) {
	_, err := LoadBytes([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocklist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: ipv4\nentries:\n  - 10.0.0.5\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Addresses(), 1)
	assert.Equal(t, "10.0.0.5", c.Addresses()[0].String())
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("blocklist.toml")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
