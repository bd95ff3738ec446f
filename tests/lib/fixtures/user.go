// Package fixtures holds static sample entities and randomized create
// payloads for every resource the suite exercises. Factories clone a sample,
// scramble its identifying fields and hand back the wire representation.
package fixtures

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type User struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

func Users() []User {
	return []User{
		{
			Email:     "alice@littlebugshop.test",
			Password:  "Alice123!",
			FirstName: "Alice",
			LastName:  "Anderson",
		},
		{
			Email:     "bob@littlebugshop.test",
			Password:  "Bob12345!",
			FirstName: "Bob",
			LastName:  "Brown",
		},
		{
			Email:     "carol@littlebugshop.test",
			Password:  "Carol123!",
			FirstName: "Carol",
			LastName:  "Clark",
		},
	}
}

func RandomUserCreatePayload() map[string]interface{} {
	userSet := Users()
	sample := userSet[rand.Intn(len(userSet))]

	sample.Email = fmt.Sprintf("%s@ex.com", tools.RandomStr())
	sample.Password = "Pw1!" + tools.RandomStr()[:16]

	return toMap(sample)
}

func toMap(v interface{}) map[string]interface{} {
	bytes, _ := json.Marshal(v)
	var payload map[string]interface{}
	json.Unmarshal(bytes, &payload) //nolint:errcheck
	return payload
}
