package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/curatedcellar/curator/internal/model"
)

// ErrInvalidCriteria is returned when a query parameter cannot be parsed.
var ErrInvalidCriteria = errors.New("invalid filter criteria")

// Query parameter names, shared with the API client.
const (
	ParamSearch   = "q"
	ParamType     = "type"
	ParamOrigin   = "origin"
	ParamPriceMin = "price_min"
	ParamPriceMax = "price_max"
)

// ParseCriteria builds criteria from query parameters. Missing parameters
// keep their defaults. On error the returned criteria still hold every field
// that parsed, so callers may choose to fall back to them.
func ParseCriteria(q url.Values) (Criteria, error) {
	return ParseCriteriaFrom(q, DefaultCriteria())
}

// ParseCriteriaFrom is ParseCriteria with base supplying the values of
// missing or invalid parameters.
func ParseCriteriaFrom(q url.Values, base Criteria) (Criteria, error) {
	c := base
	var errs []error

	c.SearchTerm = q.Get(ParamSearch)

	if v := strings.TrimSpace(q.Get(ParamType)); v != "" && v != All {
		t, err := model.ParseProductType(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidCriteria, ParamType, err))
		} else {
			c.Type = string(t)
		}
	}

	if v := q.Get(ParamOrigin); v != "" {
		c.Origin = v
	}

	if v := strings.TrimSpace(q.Get(ParamPriceMin)); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidCriteria, ParamPriceMin, v))
		} else {
			c.Price.Min = n
		}
	}

	if v := strings.TrimSpace(q.Get(ParamPriceMax)); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidCriteria, ParamPriceMax, v))
		} else {
			c.Price.Max = n
		}
	}

	return c, errors.Join(errs...)
}

// Values encodes the criteria as query parameters. Fields holding their
// default (empty search, the All sentinel, a zero floor, the default ceiling)
// are left out.
func (c Criteria) Values() url.Values {
	q := url.Values{}
	for _, kv := range c.params() {
		q.Set(kv[0], kv[1])
	}
	return q
}

// Encode renders the non-default fields as a query string in the fixed
// order q, type, origin, price_min, price_max.
func (c Criteria) Encode() string {
	var b strings.Builder
	for _, kv := range c.params() {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}

func (c Criteria) params() [][2]string {
	var out [][2]string
	if c.SearchTerm != "" {
		out = append(out, [2]string{ParamSearch, c.SearchTerm})
	}
	if c.Type != "" && c.Type != All {
		out = append(out, [2]string{ParamType, c.Type})
	}
	if c.Origin != "" && c.Origin != All {
		out = append(out, [2]string{ParamOrigin, c.Origin})
	}
	if c.Price.Min != DefaultPriceMin {
		out = append(out, [2]string{ParamPriceMin, strconv.FormatFloat(c.Price.Min, 'f', -1, 64)})
	}
	if c.Price.Max != DefaultPriceMax {
		out = append(out, [2]string{ParamPriceMax, strconv.FormatFloat(c.Price.Max, 'f', -1, 64)})
	}
	return out
}
