package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, name string, price string) Product {
	d, _ := decimal.NewFromString(price)
	return Product{
		ID:       id,
		Name:     name,
		Category: CategoryElectronics,
		Price:    d,
		Stock:    10,
		Status:   ProductActive,
	}
}

func TestAddMergesSameProduct(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", "Wireless Headphones", "29.99")

	first := cart.Add(p)
	second := cart.Add(p)

	require.Equal(t, 1, cart.Len(), "same product must merge into one line")
	assert.Equal(t, first.LineID, second.LineID)
	assert.Equal(t, 2, cart.Snapshot()[0].Quantity)
}

func TestAddDistinctProducts(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Wireless Headphones", "29.99"))
	cart.Add(testProduct("4", "Notebook", "4.99"))

	snap := cart.Snapshot()
	require.Len(t, snap, 2)
	// Insertion order preserved, oldest first.
	assert.Equal(t, "1", snap[0].Product.ID)
	assert.Equal(t, "4", snap[1].Product.ID)
	assert.NotEqual(t, snap[0].LineID, snap[1].LineID)
}

func TestSetQuantity(t *testing.T) {
	cart := NewCart()
	line := cart.Add(testProduct("1", "Wireless Headphones", "29.99"))

	cart.SetQuantity(line.LineID, 5)
	require.Equal(t, 5, cart.Snapshot()[0].Quantity)

	// Product data and identity are unchanged by a quantity update.
	assert.Equal(t, line.LineID, cart.Snapshot()[0].LineID)
	assert.Equal(t, "Wireless Headphones", cart.Snapshot()[0].Product.Name)
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		cart := NewCart()
		line := cart.Add(testProduct("1", "Wireless Headphones", "29.99"))

		cart.SetQuantity(line.LineID, qty)
		assert.True(t, cart.IsEmpty(), "quantity %d must remove the line", qty)
	}
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Wireless Headphones", "29.99"))

	cart.Remove(uuid.New())
	cart.SetQuantity(uuid.New(), 3)

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Snapshot()[0].Quantity)
}

func TestReAddAfterRemoveGetsFreshLine(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", "Wireless Headphones", "29.99")

	first := cart.Add(p)
	cart.Remove(first.LineID)
	second := cart.Add(p)

	require.Equal(t, 1, cart.Len())
	assert.NotEqual(t, first.LineID, second.LineID)
	assert.Equal(t, 1, second.Quantity)
}

func TestClearAndTotals(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Wireless Headphones", "29.99"))
	line := cart.Add(testProduct("4", "Notebook", "4.99"))
	cart.SetQuantity(line.LineID, 3)

	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, 4, cart.TotalItems())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Empty(t, cart.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Wireless Headphones", "29.99"))

	snap := cart.Snapshot()
	snap[0].Quantity = 99

	assert.Equal(t, 1, cart.Snapshot()[0].Quantity, "mutating a snapshot must not touch the cart")
}
