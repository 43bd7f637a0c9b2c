package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSeedProducts(t *testing.T) {
	products := SeedProducts()
	require.Len(t, products, 4)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)

		price, err := decimal.NewFromString(p.Price)
		require.NoError(t, err, "price of %q must be a decimal string", p.Name)
		require.True(t, price.IsPositive())

		require.Equal(t, "bunch", p.Unit)
		require.NotEmpty(t, p.Image)
		require.NotZero(t, p.InStock)
	}

	require.Equal(t, []string{
		"Amaranth (Terere)",
		"Black Nightshade (Managu)",
		"Cowpea Leaves (Kunde)",
		"Fordhook Swiss Chard",
	}, names)
}
