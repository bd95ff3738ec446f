package lib

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

// ReviewAPI covers the per-product review routes. Reviews are addressed by
// product ID first, review ID second, matching the backend's nesting.
type ReviewAPI struct {
	client *http.Client
	ep     endpoints.Reviews
}

func NewReviewAPI(client *http.Client, ep *endpoints.Registry) *ReviewAPI {
	return &ReviewAPI{client: client, ep: ep.Reviews}
}

func (a *ReviewAPI) Create(productID interface{}, params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.Create(productID), params, payload)
}

func (a *ReviewAPI) List(productID interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.List(productID), params, nil)
}

func (a *ReviewAPI) GetByID(productID, reviewID interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.GetByID(productID, reviewID), params, nil)
}

func (a *ReviewAPI) Delete(productID, reviewID interface{}, params Params) {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(204))
	doRequest(a.client, http.MethodDelete, a.ep.Delete(productID, reviewID), params, nil)
}

func (a *ReviewAPI) Moderate(productID, reviewID interface{}, params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.Moderate(productID, reviewID), params, payload)
}

func (a *ReviewAPI) MyReview(productID interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.MyReview(productID), params, nil)
}

func (a *ReviewAPI) MarkHelpful(reviewID interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.MarkHelpful(reviewID), params, nil)
}

func (a *ReviewAPI) AdminList(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Admin.List, params, nil)
}
