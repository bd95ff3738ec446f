package fixtures

import "math/rand"

type CartItem struct {
	ProductID interface{} `json:"productId" validate:"required"`
	Quantity  int         `json:"quantity" validate:"required,min=1"`
}

// CartItemPayload builds an add-to-cart payload for an existing product.
func CartItemPayload(productID interface{}) map[string]interface{} {
	return toMap(CartItem{
		ProductID: productID,
		Quantity:  rand.Intn(3) + 1,
	})
}
