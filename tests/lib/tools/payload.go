package tools

import (
	"encoding/json"

	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"
)

func UnmarshalResponse(b []byte) gjson.Result {
	return gjson.ParseBytes(b)
}

func ToMap(v interface{}) map[string]interface{} {
	js, err := json.Marshal(v)
	Expect(err).ToNot(HaveOccurred())
	out := map[string]interface{}{}
	err = json.Unmarshal(js, &out)
	Expect(err).ToNot(HaveOccurred())

	return out
}
