package services

// Delivery pricing, mirrored by the storefront UI: orders from 2000 ₽ ship
// free, everything below pays a flat courier fee. Applied once at checkout
// and stored on the order, never recomputed.
const (
	FreeDeliveryThreshold = 2000
	DeliveryFee           = 300
)

// DeliveryFeeFor returns the delivery surcharge for a cart subtotal.
func DeliveryFeeFor(subtotal int) int {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return DeliveryFee
}

// OrderTotal returns the amount the customer pays: subtotal plus delivery.
func OrderTotal(subtotal int) int {
	return subtotal + DeliveryFeeFor(subtotal)
}
