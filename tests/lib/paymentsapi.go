package lib

import (
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

// PaymentMethodAPI is CRUD over /payment-methods with params["method"],
// plus the set-default action.
type paymentMethodURLBuilder struct {
	ep endpoints.PaymentMethods
}

func (b paymentMethodURLBuilder) One(params Params, query url.Values) string {
	return withQuery(b.ep.GetByID(params["method"]), query)
}

func (b paymentMethodURLBuilder) Collection(_ Params, query url.Values) string {
	return withQuery(b.ep.List, query)
}

type PaymentMethodAPI struct {
	BuilderBasedAPI
	ep endpoints.PaymentMethods
}

func NewPaymentMethodAPI(client *http.Client, ep *endpoints.Registry) *PaymentMethodAPI {
	return &PaymentMethodAPI{
		BuilderBasedAPI: BuilderBasedAPI{client: client, url: paymentMethodURLBuilder{ep: ep.PaymentMethods}},
		ep:              ep.PaymentMethods,
	}
}

func (a *PaymentMethodAPI) SetDefault(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.SetDefault(id), params, nil)
}

type PaymentAPI struct {
	client *http.Client
	ep     endpoints.Payments
}

func NewPaymentAPI(client *http.Client, ep *endpoints.Registry) *PaymentAPI {
	return &PaymentAPI{client: client, ep: ep.Payments}
}

func (a *PaymentAPI) Process(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.Process, params, payload)
}

func (a *PaymentAPI) Transactions(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Transactions, params, nil)
}

func (a *PaymentAPI) GetTransaction(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.GetTransaction(id), params, nil)
}

func (a *PaymentAPI) Refund(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.Refund, params, payload)
}

func (a *PaymentAPI) AdminTransactions(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Admin.Transactions, params, nil)
}

func (a *PaymentAPI) AdminStatistics(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Admin.Statistics, params, nil)
}
