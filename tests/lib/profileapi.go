package lib

import (
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type ProfileAPI struct {
	client *http.Client
	ep     endpoints.Profile
}

func NewProfileAPI(client *http.Client, ep *endpoints.Registry) *ProfileAPI {
	return &ProfileAPI{client: client, ep: ep.Profile}
}

func (a *ProfileAPI) Get(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Get, params, nil)
}

func (a *ProfileAPI) Update(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPut, a.ep.Update, params, payload)
}

func (a *ProfileAPI) ChangePassword(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.ChangePassword, params, payload)
}

// AddressAPI is the profile address book: CRUD via the generic surface with
// params["address"], plus the set-default action.
type addressURLBuilder struct {
	ep endpoints.ProfileAddresses
}

func (b addressURLBuilder) One(params Params, query url.Values) string {
	return withQuery(b.ep.Update(params["address"]), query)
}

func (b addressURLBuilder) Collection(_ Params, query url.Values) string {
	return withQuery(b.ep.Add, query)
}

type AddressAPI struct {
	BuilderBasedAPI
	ep endpoints.ProfileAddresses
}

func NewAddressAPI(client *http.Client, ep *endpoints.Registry) *AddressAPI {
	return &AddressAPI{
		BuilderBasedAPI: BuilderBasedAPI{client: client, url: addressURLBuilder{ep: ep.Profile.Addresses}},
		ep:              ep.Profile.Addresses,
	}
}

func (a *AddressAPI) SetDefault(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.SetDefault(id), params, nil)
}
