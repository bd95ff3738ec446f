package lib

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type WishlistAPI struct {
	client *http.Client
	ep     endpoints.Wishlist
}

func NewWishlistAPI(client *http.Client, ep *endpoints.Registry) *WishlistAPI {
	return &WishlistAPI{client: client, ep: ep.Wishlist}
}

func (a *WishlistAPI) Get(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Get, params, nil)
}

func (a *WishlistAPI) Clear(params Params) {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(204))
	doRequest(a.client, http.MethodDelete, a.ep.Clear, params, nil)
}

func (a *WishlistAPI) Count(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Count, params, nil)
}

func (a *WishlistAPI) MoveToCart(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.MoveToCart, params, payload)
}

func (a *WishlistAPI) AddItem(productID interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.AddItem(productID), params, nil)
}

func (a *WishlistAPI) RemoveItem(productID interface{}, params Params) {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(204))
	doRequest(a.client, http.MethodDelete, a.ep.RemoveItem(productID), params, nil)
}

func (a *WishlistAPI) CheckItem(productID interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.CheckItem(productID), params, nil)
}
