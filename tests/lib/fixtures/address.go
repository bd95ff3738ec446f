package fixtures

import (
	"math/rand"

	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type Address struct {
	Label   string `json:"label" validate:"required"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required,iso3166_1_alpha2"`
}

func Addresses() []Address {
	return []Address{
		{
			Label:   "home",
			Street:  "12 Clover Lane",
			City:    "Meadowville",
			ZipCode: "10245",
			Country: "DE",
		},
		{
			Label:   "office",
			Street:  "300 Hive Street",
			City:    "Honeytown",
			ZipCode: "55821",
			Country: "PL",
		},
		{
			Label:   "summer house",
			Street:  "7 Dewdrop Road",
			City:    "Fernfield",
			ZipCode: "90377",
			Country: "NL",
		},
	}
}

func RandomAddressCreatePayload() map[string]interface{} {
	addressSet := Addresses()
	sample := addressSet[rand.Intn(len(addressSet))]

	sample.Label = sample.Label + "-" + tools.RandomStr()[:6]

	return toMap(sample)
}
