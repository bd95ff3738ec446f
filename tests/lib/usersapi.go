package lib

import (
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

type UserAPI struct {
	client *http.Client
	ep     endpoints.Users
}

func NewUserAPI(client *http.Client, ep *endpoints.Registry) *UserAPI {
	return &UserAPI{client: client, ep: ep.Users}
}

func (a *UserAPI) Register(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(201))
	return doRequest(a.client, http.MethodPost, a.ep.Register, params, payload)
}

func (a *UserAPI) Login(params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.Login, params, payload)
}

func (a *UserAPI) Logout(params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.Logout, params, nil)
}

func (a *UserAPI) GetByID(id interface{}, params Params) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodGet, a.ep.GetByID(id), params, nil)
}

// UserAdminAPI covers the /Users/admin/users management routes. The generic
// CRUD surface applies, with the target user travelling as params["user"].
type userAdminURLBuilder struct {
	ep endpoints.UsersAdmin
}

func (b userAdminURLBuilder) One(params Params, query url.Values) string {
	return withQuery(b.ep.GetUserByID(params["user"]), query)
}

func (b userAdminURLBuilder) Collection(_ Params, query url.Values) string {
	return withQuery(b.ep.Users, query)
}

type UserAdminAPI struct {
	BuilderBasedAPI
	ep endpoints.UsersAdmin
}

func NewUserAdminAPI(client *http.Client, ep *endpoints.Registry) *UserAdminAPI {
	return &UserAdminAPI{
		BuilderBasedAPI: BuilderBasedAPI{client: client, url: userAdminURLBuilder{ep: ep.Users.Admin}},
		ep:              ep.Users.Admin,
	}
}

func (a *UserAdminAPI) ResetPassword(id interface{}, params Params, payload interface{}) gjson.Result {
	tools.AddIfNotExists(&params, "expectStatus", tools.ExpectExactStatus(200))
	return doRequest(a.client, http.MethodPost, a.ep.ResetPassword(id), params, payload)
}
