package fixtures

import (
	"math/rand"

	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type Product struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

func Products() []Product {
	return []Product{
		{
			Name:        "Ladybug Plush",
			Description: "A friendly plush ladybug, 25cm.",
			Price:       14.99,
			Category:    "toys",
			Stock:       120,
		},
		{
			Name:        "Firefly Lamp",
			Description: "Night lamp shaped like a firefly.",
			Price:       39.50,
			Category:    "home",
			Stock:       35,
		},
		{
			Name:        "Beetle Backpack",
			Description: "Kids backpack with beetle wings.",
			Price:       24.00,
			Category:    "accessories",
			Stock:       60,
		},
		{
			Name:        "Ant Farm Kit",
			Description: "Observation ant farm with sand and tunnel gel.",
			Price:       49.90,
			Category:    "toys",
			Stock:       15,
		},
	}
}

func RandomProductCreatePayload() map[string]interface{} {
	productSet := Products()
	sample := productSet[rand.Intn(len(productSet))]

	sample.Name = sample.Name + " " + tools.RandomStr()[:8]
	sample.Price = float64(rand.Intn(9000)+100) / 100
	sample.Stock = rand.Intn(200) + 1

	return toMap(sample)
}
