package auth

import (
	"testing"

	"github.com/Pavan17153/SS/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID uint, qty int) models.CartItem {
	return models.CartItem{ProductID: productID, Quantity: qty}
}

func TestMergeLines_SumsAndAppends(t *testing.T) {
	guest := []models.CartItem{line(1, 2)}
	user := []models.CartItem{line(1, 1), line(2, 1)}

	merged := MergeLines(user, guest)

	require.Len(t, merged, 2)
	assert.Equal(t, uint(1), merged[0].ProductID)
	assert.Equal(t, 3, merged[0].Quantity)
	assert.Equal(t, uint(2), merged[1].ProductID)
	assert.Equal(t, 1, merged[1].Quantity)
}

func TestMergeLines_PreservesUserOrderAppendsNew(t *testing.T) {
	user := []models.CartItem{line(5, 1), line(9, 2)}
	guest := []models.CartItem{line(3, 4), line(9, 1)}

	merged := MergeLines(user, guest)

	require.Len(t, merged, 3)
	// Untouched user lines keep their positions; new guest lines append.
	assert.Equal(t, uint(5), merged[0].ProductID)
	assert.Equal(t, uint(9), merged[1].ProductID)
	assert.Equal(t, 3, merged[1].Quantity)
	assert.Equal(t, uint(3), merged[2].ProductID)
}

func TestMergeLines_Idempotent(t *testing.T) {
	user := []models.CartItem{line(1, 1), line(2, 1)}
	guest := []models.CartItem{line(1, 2)}

	once := MergeLines(user, guest)
	// After the first merge the guest cart is consumed; a second run sees an
	// empty guest tier and must change nothing.
	twice := MergeLines(once, nil)

	assert.Equal(t, once, twice)
}

func TestMergeLines_EmptyUserCart(t *testing.T) {
	guest := []models.CartItem{line(7, 3)}

	merged := MergeLines(nil, guest)

	require.Len(t, merged, 1)
	assert.Equal(t, uint(7), merged[0].ProductID)
	assert.Equal(t, 3, merged[0].Quantity)
}

func TestMergeLines_DoesNotMutateInputs(t *testing.T) {
	user := []models.CartItem{line(1, 1)}
	guest := []models.CartItem{line(1, 2)}

	_ = MergeLines(user, guest)

	assert.Equal(t, 1, user[0].Quantity)
	assert.Equal(t, 2, guest[0].Quantity)
}
