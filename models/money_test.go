package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyUnmarshalNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &m))
	assert.Equal(t, 12.5, m.Float64())
}

func TestMoneyUnmarshalString(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"19.99"`), &m))
	assert.Equal(t, 19.99, m.Float64())
}

func TestMoneyUnmarshalMalformedString(t *testing.T) {
	var m Money
	err := json.Unmarshal([]byte(`"free"`), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed price")
}

func TestMoneyInsideProduct(t *testing.T) {
	// Mixed representations in one payload, as the backend actually
	// sends them.
	payload := `[
		{"id":"1","name":"Bananas","price":"1.25","inStock":true},
		{"id":"2","name":"Milk","price":3.49,"inStock":true}
	]`

	var products []Product
	require.NoError(t, json.Unmarshal([]byte(payload), &products))
	assert.Equal(t, 1.25, products[0].Price.Float64())
	assert.Equal(t, 3.49, products[1].Price.Float64())
}

func TestMoneyMarshalAsNumber(t *testing.T) {
	out, err := json.Marshal(Money(4.5))
	require.NoError(t, err)
	assert.Equal(t, `4.5`, string(out))
}
