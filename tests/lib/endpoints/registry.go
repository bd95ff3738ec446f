// Package endpoints maps the LittleBugShop HTTP API onto a typed namespace.
// Test code obtains every URL here and never assembles paths by hand.
//
// Path literal casing is uneven on purpose (`/Users` vs `/users/profile` vs
// `/payment-methods`): it mirrors the backend's actual routing table and is
// part of the wire contract, so it must not be "normalized".
package endpoints

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL points at the local docker-compose deployment.
const DefaultBaseURL = "http://localhost:5052"

// Registry is the endpoint namespace for one deployment. It is immutable
// after construction and safe to share between test workers.
type Registry struct {
	BaseURL string

	Users          Users
	Products       Products
	Cart           Cart
	Orders         Orders
	Profile        Profile
	Reviews        Reviews
	Wishlist       Wishlist
	PaymentMethods PaymentMethods
	Payments       Payments
	Coupons        Coupons
	Session        Session
}

// New builds the full namespace for baseURL, a scheme+host[:port] prefix
// without trailing slash. An empty baseURL selects DefaultBaseURL. The
// environment is never consulted here; configure.Load resolves BASE_URL and
// passes it in. No validation is performed: a malformed base yields URLs
// that fail at the HTTP client, not here.
func New(baseURL string) *Registry {
	base := strings.TrimSuffix(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	api := base + "/api"

	return &Registry{
		BaseURL: base,
		Users: Users{
			Register: api + "/Users/register",
			Login:    api + "/Users/login",
			Logout:   api + "/Users/logout",
			root:     api + "/Users",
			Admin: UsersAdmin{
				Users: api + "/Users/admin/users",
				root:  api + "/Users/admin/users",
			},
		},
		Products: Products{
			List:   api + "/Products",
			Create: api + "/Products",
			root:   api + "/Products",
		},
		Cart: Cart{
			Get:          api + "/Cart",
			Clear:        api + "/Cart",
			AddItem:      api + "/Cart/items",
			Checkout:     api + "/Cart/checkout",
			ApplyCoupon:  api + "/Cart/apply-coupon",
			RemoveCoupon: api + "/Cart/remove-coupon",
			items:        api + "/Cart/items",
		},
		Orders: Orders{
			Create:   api + "/Orders",
			Place:    api + "/Orders/place",
			List:     api + "/Orders",
			MyOrders: api + "/Orders/my-orders",
			Pending:  api + "/Orders/pending",
			root:     api + "/Orders",
		},
		Profile: Profile{
			Get:            api + "/users/profile",
			Update:         api + "/users/profile",
			ChangePassword: api + "/users/profile/change-password",
			Addresses: ProfileAddresses{
				Add:  api + "/users/profile/addresses",
				root: api + "/users/profile/addresses",
			},
		},
		Reviews: Reviews{
			api: api,
			Admin: ReviewsAdmin{
				List: api + "/admin/reviews",
			},
		},
		Wishlist: Wishlist{
			Get:        api + "/Wishlist",
			Clear:      api + "/Wishlist",
			MoveToCart: api + "/Wishlist/move-to-cart",
			Count:      api + "/Wishlist/count",
			items:      api + "/Wishlist/items",
			check:      api + "/Wishlist/check",
		},
		PaymentMethods: PaymentMethods{
			List: api + "/payment-methods",
			Add:  api + "/payment-methods",
			root: api + "/payment-methods",
		},
		Payments: Payments{
			Process:      api + "/payments/process",
			Transactions: api + "/payments/transactions",
			Refund:       api + "/payments/refund",
			transactions: api + "/payments/transactions",
			Admin: PaymentsAdmin{
				Transactions: api + "/payments/admin/transactions",
				Statistics:   api + "/payments/admin/statistics",
			},
		},
		Coupons: Coupons{
			validate: api + "/Coupons/validate",
			Admin: CouponsAdmin{
				List:   api + "/Coupons/admin/coupons",
				Create: api + "/Coupons/admin/coupons",
				root:   api + "/Coupons/admin/coupons",
			},
		},
		Session: Session{
			Get: api + "/Session",
		},
	}
}

// seg renders one path parameter. Values are stringified the same way for
// numeric IDs and string codes, then percent-encoded so reserved characters
// in e.g. coupon codes cannot break the path.
func seg(v interface{}) string {
	return "/" + url.PathEscape(fmt.Sprint(v))
}

type Users struct {
	Register string
	Login    string
	Logout   string
	Admin    UsersAdmin

	root string
}

func (u Users) GetByID(id interface{}) string { return u.root + seg(id) }

type UsersAdmin struct {
	Users string

	root string
}

func (a UsersAdmin) GetUserByID(id interface{}) string { return a.root + seg(id) }

func (a UsersAdmin) UpdateUser(id interface{}) string { return a.root + seg(id) }

func (a UsersAdmin) ResetPassword(id interface{}) string {
	return a.root + seg(id) + "/reset-password"
}

type Products struct {
	List   string
	Create string

	root string
}

func (p Products) GetByID(id interface{}) string { return p.root + seg(id) }

func (p Products) Update(id interface{}) string { return p.root + seg(id) }

func (p Products) Delete(id interface{}) string { return p.root + seg(id) }

func (p Products) Availability(id interface{}) string { return p.root + seg(id) + "/availability" }

func (p Products) Stock(id interface{}) string { return p.root + seg(id) + "/stock" }

func (p Products) IncreaseStock(id interface{}) string { return p.root + seg(id) + "/stock/increase" }

func (p Products) DecreaseStock(id interface{}) string { return p.root + seg(id) + "/stock/decrease" }

type Cart struct {
	Get          string
	Clear        string
	AddItem      string
	Checkout     string
	ApplyCoupon  string
	RemoveCoupon string

	items string
}

func (c Cart) UpdateItem(itemID interface{}) string { return c.items + seg(itemID) }

func (c Cart) RemoveItem(itemID interface{}) string { return c.items + seg(itemID) }

type Orders struct {
	Create   string
	Place    string
	List     string
	MyOrders string
	Pending  string

	root string
}

func (o Orders) GetByID(id interface{}) string { return o.root + seg(id) }

func (o Orders) Delete(id interface{}) string { return o.root + seg(id) }

func (o Orders) UpdateStatus(id interface{}) string { return o.root + seg(id) + "/status" }

func (o Orders) Cancel(id interface{}) string { return o.root + seg(id) + "/cancel" }

type Profile struct {
	Get            string
	Update         string
	ChangePassword string
	Addresses      ProfileAddresses
}

type ProfileAddresses struct {
	Add string

	root string
}

func (a ProfileAddresses) Update(id interface{}) string { return a.root + seg(id) }

func (a ProfileAddresses) Delete(id interface{}) string { return a.root + seg(id) }

func (a ProfileAddresses) SetDefault(id interface{}) string {
	return a.root + seg(id) + "/set-default"
}

// Reviews nest under the product they belong to, so every operation except
// the admin listing takes the product ID first.
type Reviews struct {
	Admin ReviewsAdmin

	api string
}

func (r Reviews) Create(productID interface{}) string {
	return r.api + "/products" + seg(productID) + "/Reviews"
}

func (r Reviews) List(productID interface{}) string {
	return r.api + "/products" + seg(productID) + "/Reviews"
}

func (r Reviews) GetByID(productID, reviewID interface{}) string {
	return r.api + "/products" + seg(productID) + "/Reviews" + seg(reviewID)
}

func (r Reviews) Delete(productID, reviewID interface{}) string {
	return r.api + "/products" + seg(productID) + "/Reviews" + seg(reviewID)
}

func (r Reviews) Moderate(productID, reviewID interface{}) string {
	return r.api + "/products" + seg(productID) + "/Reviews" + seg(reviewID) + "/moderate"
}

func (r Reviews) MyReview(productID interface{}) string {
	return r.api + "/products" + seg(productID) + "/my-review"
}

func (r Reviews) MarkHelpful(reviewID interface{}) string {
	return r.api + "/reviews" + seg(reviewID) + "/helpful"
}

type ReviewsAdmin struct {
	List string
}

type Wishlist struct {
	Get        string
	Clear      string
	MoveToCart string
	Count      string

	items string
	check string
}

func (w Wishlist) AddItem(productID interface{}) string { return w.items + seg(productID) }

func (w Wishlist) RemoveItem(productID interface{}) string { return w.items + seg(productID) }

func (w Wishlist) CheckItem(productID interface{}) string { return w.check + seg(productID) }

type PaymentMethods struct {
	List string
	Add  string

	root string
}

func (p PaymentMethods) GetByID(id interface{}) string { return p.root + seg(id) }

func (p PaymentMethods) Update(id interface{}) string { return p.root + seg(id) }

func (p PaymentMethods) Delete(id interface{}) string { return p.root + seg(id) }

func (p PaymentMethods) SetDefault(id interface{}) string { return p.root + seg(id) + "/set-default" }

type Payments struct {
	Process      string
	Transactions string
	Refund       string
	Admin        PaymentsAdmin

	transactions string
}

func (p Payments) GetTransaction(id interface{}) string { return p.transactions + seg(id) }

type PaymentsAdmin struct {
	Transactions string
	Statistics   string
}

type Coupons struct {
	Admin CouponsAdmin

	validate string
}

func (c Coupons) Validate(code interface{}) string { return c.validate + seg(code) }

type CouponsAdmin struct {
	List   string
	Create string

	root string
}

func (a CouponsAdmin) Update(id interface{}) string { return a.root + seg(id) }

func (a CouponsAdmin) Delete(id interface{}) string { return a.root + seg(id) }

func (a CouponsAdmin) Usage(id interface{}) string { return a.root + seg(id) + "/usage" }

type Session struct {
	Get string
}
