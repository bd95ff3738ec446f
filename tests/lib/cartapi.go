package lib

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

// CartAPI drives the session cart of whoever the client is logged in as.
type CartAPI struct {
	client *http.Client
	ep     endpoints.Cart
}

func NewCartAPI(client *http.Client, ep *endpoints.Registry) *CartAPI {
	return &CartAPI{client: client, ep: ep.Cart}
}

func (a *CartAPI) Get(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Get, params, nil)
}

func (a *CartAPI) Clear(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(204))
	return doRequest(a.client, http.MethodDelete, a.ep.Clear, params, nil)
}

func (a *CartAPI) AddItem(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.AddItem, params, payload)
}

func (a *CartAPI) UpdateItem(itemID interface{}, params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPut, a.ep.UpdateItem(itemID), params, payload)
}

func (a *CartAPI) RemoveItem(itemID interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(204))
	return doRequest(a.client, http.MethodDelete, a.ep.RemoveItem(itemID), params, nil)
}

func (a *CartAPI) Checkout(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.Checkout, params, payload)
}

func (a *CartAPI) ApplyCoupon(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.ApplyCoupon, params, payload)
}

func (a *CartAPI) RemoveCoupon(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodDelete, a.ep.RemoveCoupon, params, nil)
}
