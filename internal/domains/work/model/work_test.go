package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedByID(t *testing.T, id string) Work {
	t.Helper()
	for _, w := range SeedWorks() {
		if w.ID == id {
			return w
		}
	}
	t.Fatalf("seed work %s missing", id)
	return Work{}
}

func TestVisible(t *testing.T) {
	assert.True(t, seedByID(t, "1").Visible())
	// sold out
	assert.False(t, seedByID(t, "3").Visible())

	w := seedByID(t, "1")
	w.Status = StatusUnlisted
	assert.False(t, w.Visible())
}

func TestMatchesText(t *testing.T) {
	w := seedByID(t, "1")
	assert.True(t, w.MatchesText("ETHEREAL"))
	assert.True(t, w.MatchesText("clouds"))
	assert.True(t, w.MatchesText("glimmer"))
	assert.True(t, w.MatchesText("sky"))
	assert.True(t, w.MatchesText(""))
	assert.False(t, w.MatchesText("ocean"))
}

func TestMatchesCreator(t *testing.T) {
	w := seedByID(t, "4")
	assert.True(t, w.MatchesCreator("sylva"))
	assert.True(t, w.MatchesCreator("0xABC...123"))
	assert.False(t, w.MatchesCreator("0xabc"))
}

func TestEditionLookup(t *testing.T) {
	w := seedByID(t, "2")
	e, ok := w.Edition(1)
	require.True(t, ok)
	assert.True(t, e.Price.Equal(decimal.RequireFromString("0.1")))

	_, ok = w.Edition(9)
	assert.False(t, ok)
}

func TestParseFilters(t *testing.T) {
	f, err := ParseFilters(`{"price":{"min":0.2,"max":null},"chains":["evm"]}`)
	require.NoError(t, err)
	assert.Nil(t, f.Price.Max)
	assert.True(t, f.Price.Contains(decimal.RequireFromString("1000")))
	assert.False(t, f.Price.Contains(decimal.RequireFromString("0.1")))
	assert.Equal(t, []ChainType{ChainEVM}, f.Chains)

	_, err = ParseFilters(`{"chains":`)
	assert.Error(t, err)

	_, err = ParseFilters(`{"chains":["solana"]}`)
	assert.Error(t, err)

	f, err = ParseFilters("")
	require.NoError(t, err)
	assert.Nil(t, f.Price)
}
