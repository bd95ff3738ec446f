package lib

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type OrderAPI struct {
	client *http.Client
	ep     endpoints.Orders
}

func NewOrderAPI(client *http.Client, ep *endpoints.Registry) *OrderAPI {
	return &OrderAPI{client: client, ep: ep.Orders}
}

func (a *OrderAPI) Create(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.Create, params, payload)
}

// Place creates an order from the caller's current cart.
func (a *OrderAPI) Place(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.Place, params, payload)
}

// List is the admin view over all orders.
func (a *OrderAPI) List(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.List, params, nil)
}

func (a *OrderAPI) MyOrders(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.MyOrders, params, nil)
}

func (a *OrderAPI) Pending(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Pending, params, nil)
}

func (a *OrderAPI) GetByID(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.GetByID(id), params, nil)
}

func (a *OrderAPI) Delete(id interface{}, params Params) {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(204))
	doRequest(a.client, http.MethodDelete, a.ep.Delete(id), params, nil)
}

func (a *OrderAPI) UpdateStatus(id interface{}, params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPut, a.ep.UpdateStatus(id), params, payload)
}

func (a *OrderAPI) Cancel(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.Cancel(id), params, nil)
}
