package fixtures

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	Code          string  `json:"code" validate:"required"`
	DiscountType  string  `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discountValue" validate:"required,gt=0"`
	ExpiresAt     string  `json:"expiresAt" validate:"required"`
	UsageLimit    int     `json:"usageLimit" validate:"gte=0"`
}

func Coupons() []Coupon {
	return []Coupon{
		{
			Code:          "WELCOME10",
			DiscountType:  "percentage",
			DiscountValue: 10,
			ExpiresAt:     "2030-01-01T00:00:00Z",
			UsageLimit:    0,
		},
		{
			Code:          "FIVEOFF",
			DiscountType:  "fixed",
			DiscountValue: 5,
			ExpiresAt:     "2030-01-01T00:00:00Z",
			UsageLimit:    100,
		},
		{
			Code:          "SUMMER25",
			DiscountType:  "percentage",
			DiscountValue: 25,
			ExpiresAt:     "2030-06-30T00:00:00Z",
			UsageLimit:    500,
		},
	}
}

func RandomCouponCreatePayload() map[string]interface{} {
	couponSet := Coupons()
	sample := couponSet[rand.Intn(len(couponSet))]

	sample.Code = "E2E-" + strings.ToUpper(uuid.New().String()[:8])
	sample.ExpiresAt = time.Now().AddDate(1, 0, 0).UTC().Format(time.RFC3339)

	return toMap(sample)
}
