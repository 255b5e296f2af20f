package services_test

import (
	"testing"

	"bakery_shop/internal/cart"
	"bakery_shop/internal/models"
	"bakery_shop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(products ...models.Product) services.CartService {
	return services.NewCartService(cart.NewMemoryFactory(), newFakeProductRepo(products...))
}

func croissant() models.Product {
	return models.Product{ID: 1, Name: "Круассан классический", Price: 180, IsAvailable: true}
}

func cake() models.Product {
	return models.Product{ID: 2, Name: "Шоколадный торт", Price: 2500, IsAvailable: true}
}

func TestCartServiceAddItem(t *testing.T) {
	svc := newCartService(croissant())

	_, err := svc.AddItem("s1", 1)
	require.NoError(t, err)
	summary, err := svc.AddItem("s1", 1)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 360, summary.Subtotal)
	assert.Equal(t, 300, summary.DeliveryFee)
	assert.Equal(t, 660, summary.Total)
}

func TestCartServiceFreeDeliveryOnceThresholdMet(t *testing.T) {
	svc := newCartService(croissant(), cake())

	_, err := svc.AddItem("s1", 1)
	require.NoError(t, err)
	summary, err := svc.AddItem("s1", 2)
	require.NoError(t, err)

	assert.Equal(t, 2680, summary.Subtotal)
	assert.Equal(t, 0, summary.DeliveryFee)
	assert.Equal(t, 2680, summary.Total)
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	svc := newCartService(croissant())

	_, err := svc.AddItem("s1", 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartServiceAddUnavailableProduct(t *testing.T) {
	hidden := croissant()
	hidden.IsAvailable = false
	svc := newCartService(hidden)

	_, err := svc.AddItem("s1", 1)
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestCartServicePersistsAcrossReads(t *testing.T) {
	svc := newCartService(croissant(), cake())

	_, err := svc.AddItem("s1", 1)
	require.NoError(t, err)
	_, err = svc.AddItem("s1", 2)
	require.NoError(t, err)

	// every call builds a fresh store from the session slot
	summary, err := svc.GetCart("s1")
	require.NoError(t, err)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, uint(1), summary.Items[0].ID)
	assert.Equal(t, uint(2), summary.Items[1].ID)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	svc := newCartService(croissant())

	_, err := svc.AddItem("s1", 1)
	require.NoError(t, err)

	other, err := svc.GetCart("s2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartServiceUpdateQuantityAndClear(t *testing.T) {
	svc := newCartService(croissant())

	_, err := svc.AddItem("s1", 1)
	require.NoError(t, err)

	summary, err := svc.UpdateQuantity("s1", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalItems)

	summary, err = svc.UpdateQuantity("s1", 1, 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	_, err = svc.AddItem("s1", 1)
	require.NoError(t, err)
	summary, err = svc.ClearCart("s1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.Subtotal)
}
