package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func withArgs(t *testing.T, args []string) {
	t.Helper()
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = args
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	withArgs(t, []string{"cmd"})

	c := &Config{}
	c.LoadDefaults()
	want := *c

	parseJson(c)

	assert.Equal(t, want, *c)
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeTempConfig(t, `{
		"endpoint_addr": ":7070",
		"database_dsn": "postgres://json",
		"secret_key": "json-secret",
		"token_validity_duration": "24h",
		"bcrypt_cost": 10,
		"db_timeout": "2s",
		"cors_origins": "http://json.local"
	}`)
	withArgs(t, []string{"cmd", "-c", path})

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":7070", c.EndpointAddr)
	assert.Equal(t, "postgres://json", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, 2*time.Second, c.DBTimeout)
	assert.Equal(t, "http://json.local", c.CORSOrigins)

	// untouched fields keep defaults
	assert.Equal(t, 20, c.DBMaxOpenConns)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"secret_key": "only-this"}`)
	withArgs(t, []string{"cmd", "-config", path})

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "only-this", c.SecretKey)
	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, 7*24*time.Hour, c.TokenValidityDuration)
}

func TestParseJson_InvalidJSONPanics(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	withArgs(t, []string{"cmd", "-c", path})

	c := &Config{}
	c.LoadDefaults()

	require.Panics(t, func() { parseJson(c) })
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	withArgs(t, []string{"cmd", "-c", filepath.Join(t.TempDir(), "absent.json")})

	c := &Config{}
	c.LoadDefaults()

	require.Panics(t, func() { parseJson(c) })
}
