package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildPaths(t *testing.T) {
	doc := Build(Options{BasePath: "/api/btcwallet"})

	for _, p := range []string{"/api/btcwallet/first", "/api/btcwallet/address/{address}", "/api/btcwallet/all", "/api/btcwallet/health"} {
		item, ok := doc.Paths[p]
		require.True(t, ok, "missing path %s", p)
		require.NotNil(t, item.Get, "missing GET for %s", p)
	}
	assert.Len(t, doc.Servers, 1)
	assert.Equal(t, "BTC Wallet Service API", doc.Info.Title)
}

func TestBuildAddsConfiguredServer(t *testing.T) {
	doc := Build(Options{BasePath: "/api/btcwallet", ServerURL: "https://wallets.example.com"})

	require.Len(t, doc.Servers, 2)
	assert.Equal(t, "https://wallets.example.com", doc.Servers[1].URL)
}

func TestRenderJSONAndYAML(t *testing.T) {
	doc := Build(Options{BasePath: "/api/btcwallet"})

	raw, err := doc.JSON()
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(raw, &fromJSON))
	assert.Equal(t, Version, fromJSON["openapi"])

	rawYAML, err := doc.YAML()
	require.NoError(t, err)
	var fromYAML Document
	require.NoError(t, yaml.Unmarshal(rawYAML, &fromYAML))
	assert.Equal(t, doc.Info, fromYAML.Info)
	assert.Equal(t, "date", fromYAML.Comps.Schemas["BTCWallet"].Properties["date"].Format)
}
