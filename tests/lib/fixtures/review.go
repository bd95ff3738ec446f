package fixtures

import (
	"math/rand"

	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type Review struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"required"`
	Comment string `json:"comment"`
}

func Reviews() []Review {
	return []Review{
		{
			Rating:  5,
			Title:   "My kid loves it",
			Comment: "Sturdy and cute, survived the sandbox.",
		},
		{
			Rating:  4,
			Title:   "Good value",
			Comment: "Arrived quickly, slightly smaller than pictured.",
		},
		{
			Rating:  2,
			Title:   "Not as described",
			Comment: "The wings came off after a week.",
		},
	}
}

func RandomReviewCreatePayload() map[string]interface{} {
	reviewSet := Reviews()
	sample := reviewSet[rand.Intn(len(reviewSet))]

	sample.Rating = rand.Intn(5) + 1
	sample.Title = sample.Title + " " + tools.RandomStr()[:6]

	return toMap(sample)
}
