package lib

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type Params = tools.Params

// TestAPI is the verb-level surface for CRUD-shaped resource groups.
// params may carry "expectStatus" func(*http.Response) and "expectPayload"
// func(gjson.Result) callbacks; each verb installs a default status
// expectation when none is given.
type TestAPI interface {
	Create(Params, url.Values, interface{}) gjson.Result
	Read(Params, url.Values) gjson.Result
	Update(Params, url.Values, interface{}) gjson.Result
	Delete(Params, url.Values)
	List(Params, url.Values) gjson.Result
}

// URLBuilder adapts one endpoint group of the registry to the generic CRUD
// surface. Identifying values travel in params under group-specific keys.
type URLBuilder interface {
	One(Params, url.Values) string
	Collection(Params, url.Values) string
}

var _ TestAPI = (*BuilderBasedAPI)(nil)

type BuilderBasedAPI struct {
	client *http.Client
	url    URLBuilder
}

func (b *BuilderBasedAPI) Create(params Params, query url.Values, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(b.client, http.MethodPost, b.url.Collection(params, query), params, payload)
}

func (b *BuilderBasedAPI) Read(params Params, query url.Values) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(b.client, http.MethodGet, b.url.One(params, query), params, nil)
}

func (b *BuilderBasedAPI) Update(params Params, query url.Values, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(b.client, http.MethodPut, b.url.One(params, query), params, payload)
}

func (b *BuilderBasedAPI) Delete(params Params, query url.Values) {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(204))
	doRequest(b.client, http.MethodDelete, b.url.One(params, query), params, nil)
}

func (b *BuilderBasedAPI) List(params Params, query url.Values) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(b.client, http.MethodGet, b.url.Collection(params, query), params, nil)
}

// doRequest is shared by BuilderBasedAPI and the action-style APIs: marshal
// the payload, execute, report the outcome through By, run the expectation
// callbacks, hand the parsed body back.
func doRequest(client *http.Client, method, rawURL string, params Params, payload interface{}) gjson.Result {
	var body io.Reader
	if payload != nil {
		marshalled, err := json.Marshal(payload)
		Expect(err).ToNot(HaveOccurred())

		body = bytes.NewReader(marshalled)
	}

	req, err := http.NewRequest(method, rawURL, body)
	Expect(err).ToNot(HaveOccurred())

	resp, err := client.Do(req)
	Expect(err).ToNot(HaveOccurred())

	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	Expect(err).ToNot(HaveOccurred())

	parsed := tools.UnmarshalResponse(data)

	By(resp.Status+" | Payload: "+string(data), func() {
		if expectStatus, ok := params["expectStatus"]; ok {
			expectStatus.(func(response *http.Response))(resp)
		}

		if expectPayload, ok := params["expectPayload"]; ok {
			expectPayload.(func(gjson.Result))(parsed)
		}
	})

	return parsed
}

func withQuery(rawURL string, query url.Values) string {
	if len(query) == 0 {
		return rawURL
	}
	return rawURL + "?" + query.Encode()
}
