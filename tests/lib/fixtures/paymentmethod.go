package fixtures

import (
	"fmt"
	"math/rand"
	"time"
)

type PaymentMethod struct {
	Type        string `json:"type" validate:"required,oneof=card paypal"`
	Label       string `json:"label" validate:"required"`
	CardNumber  string `json:"cardNumber,omitempty" validate:"omitempty,credit_card"`
	ExpiryMonth int    `json:"expiryMonth,omitempty" validate:"omitempty,min=1,max=12"`
	ExpiryYear  int    `json:"expiryYear,omitempty" validate:"omitempty,min=2024"`
}

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{
			Type:        "card",
			Label:       "personal visa",
			CardNumber:  "4242424242424242",
			ExpiryMonth: 12,
			ExpiryYear:  2030,
		},
		{
			Type:        "card",
			Label:       "company mastercard",
			CardNumber:  "5555555555554444",
			ExpiryMonth: 6,
			ExpiryYear:  2029,
		},
		{
			Type:  "paypal",
			Label: "family paypal",
		},
	}
}

func RandomPaymentMethodCreatePayload() map[string]interface{} {
	methodSet := PaymentMethods()
	sample := methodSet[rand.Intn(len(methodSet))]

	sample.Label = fmt.Sprintf("%s %d", sample.Label, time.Now().UnixNano())

	return toMap(sample)
}
