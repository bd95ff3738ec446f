package lib

import (
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type CouponAPI struct {
	client *http.Client
	ep     endpoints.Coupons
}

func NewCouponAPI(client *http.Client, ep *endpoints.Registry) *CouponAPI {
	return &CouponAPI{client: client, ep: ep.Coupons}
}

func (a *CouponAPI) Validate(code interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Validate(code), params, nil)
}

// CouponAdminAPI is CRUD over /Coupons/admin/coupons with params["coupon"],
// plus the usage report.
type couponAdminURLBuilder struct {
	ep endpoints.CouponsAdmin
}

func (b couponAdminURLBuilder) One(params Params, query url.Values) string {
	return withQuery(b.ep.Update(params["coupon"]), query)
}

func (b couponAdminURLBuilder) Collection(_ Params, query url.Values) string {
	return withQuery(b.ep.List, query)
}

type CouponAdminAPI struct {
	BuilderBasedAPI
	ep endpoints.CouponsAdmin
}

func NewCouponAdminAPI(client *http.Client, ep *endpoints.Registry) *CouponAdminAPI {
	return &CouponAdminAPI{
		BuilderBasedAPI: BuilderBasedAPI{client: client, url: couponAdminURLBuilder{ep: ep.Coupons.Admin}},
		ep:              ep.Coupons.Admin,
	}
}

func (a *CouponAdminAPI) Usage(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.Usage(id), params, nil)
}
