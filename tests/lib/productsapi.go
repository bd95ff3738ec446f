package lib

import (
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type productURLBuilder struct {
	ep endpoints.Products
}

func (b productURLBuilder) One(params Params, query url.Values) string {
	return withQuery(b.ep.GetByID(params["product"]), query)
}

func (b productURLBuilder) Collection(_ Params, query url.Values) string {
	return withQuery(b.ep.List, query)
}

// ProductAPI is CRUD over /Products plus the stock action routes. The
// target product travels as params["product"].
type ProductAPI struct {
	BuilderBasedAPI
	ep endpoints.Products
}

func NewProductAPI(client *http.Client, ep *endpoints.Registry) *ProductAPI {
	return &ProductAPI{
		BuilderBasedAPI: BuilderBasedAPI{client: client, url: productURLBuilder{ep: ep.Products}},
		ep:              ep.Products,
	}
}

func (a *ProductAPI) Availability(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Availability(id), params, nil)
}

func (a *ProductAPI) Stock(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Stock(id), params, nil)
}

func (a *ProductAPI) IncreaseStock(id interface{}, params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.IncreaseStock(id), params, payload)
}

func (a *ProductAPI) DecreaseStock(id interface{}, params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.DecreaseStock(id), params, payload)
}
