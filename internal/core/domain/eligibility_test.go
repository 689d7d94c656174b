package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAdd(t *testing.T) {
	tests := []struct {
		name   string
		status ProductStatus
		stock  int
		want   bool
	}{
		{"active with stock", ProductActive, 5, true},
		{"active without stock", ProductActive, 0, false},
		{"inactive with stock", ProductInactive, 5, false},
		{"inactive without stock", ProductInactive, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProduct("1", "item", "9.99")
			p.Status = tt.status
			p.Stock = tt.stock
			assert.Equal(t, tt.want, CanAdd(p))
		})
	}
}

func catalogFixture() []Product {
	mk := func(id, name string, cat Category) Product {
		p := testProduct(id, name, "9.99")
		p.Category = cat
		return p
	}
	return []Product{
		mk("1", "Wireless Headphones", CategoryElectronics),
		mk("2", "Cotton T-Shirt", CategoryClothing),
		mk("3", "Bluetooth Speaker", CategoryElectronics),
		mk("4", "Notebook", CategoryStationery),
	}
}

func TestFilterEmptyQueryReturnsAllInOrder(t *testing.T) {
	products := catalogFixture()

	got := Filter(products, "", "")

	require.Len(t, got, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, got[i].ID)
	}
}

func TestFilterByText(t *testing.T) {
	products := catalogFixture()

	got := Filter(products, "blue", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Bluetooth Speaker", got[0].Name)

	// Case-insensitive on the name.
	got = Filter(products, "WIRELESS", "")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Id substring match works too.
	got = Filter(products, "4", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Notebook", got[0].Name)
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(catalogFixture(), "", CategoryElectronics)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

// Both predicates must hold: a text hit in the wrong category is out.
func TestFilterIsConjunctive(t *testing.T) {
	got := Filter(catalogFixture(), "Notebook", CategoryElectronics)
	assert.Empty(t, got)

	got = Filter(catalogFixture(), "Notebook", CategoryStationery)
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(catalogFixture(), "no such thing", "")
	assert.Empty(t, got)
}
