package lib

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type SessionAPI struct {
	client *http.Client
	ep     endpoints.Session
}

func NewSessionAPI(client *http.Client, ep *endpoints.Registry) *SessionAPI {
	return &SessionAPI{client: client, ep: ep.Session}
}

func (a *SessionAPI) Get(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Get, params, nil)
}
