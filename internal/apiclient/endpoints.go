// Package apiclient builds requests for the storefront backend API. It never
// sends them; callers own the transport.
package apiclient

import (
	"net/url"

	"github.com/curatedcellar/curator/internal/catalog"
)

// Endpoint paths relative to the API base URL.
const (
	PathLogin    = "/auth/login/"
	PathRefresh  = "/auth/refresh/"
	PathSignup   = "/auth/signup/"
	PathProducts = "/products/"
	PathVault    = "/vault/"
	PathMpesaSTK = "/payments/mpesa/stk/"
	PathEvents   = "/events/"
)

// ProductsPath returns the product list path with the non-default filter
// fields encoded as a query string.
func ProductsPath(c catalog.Criteria) string {
	q := c.Encode()
	if q == "" {
		return PathProducts
	}
	return PathProducts + "?" + q
}

// ProductPath returns the detail path for a slug.
func ProductPath(slug string) string {
	return PathProducts + url.PathEscape(slug) + "/"
}
