package apiclient

import (
	"net/url"
	"strconv"
)

// Params builds query values fluently, skipping unset filters.
type Params url.Values

func NewParams() Params {
	return Params{}
}

func (p Params) Set(key, value string) Params {
	if value != "" {
		url.Values(p).Set(key, value)
	}
	return p
}

// Int sets key when value is positive; ids and limits are never zero.
func (p Params) Int(key string, value int) Params {
	if value > 0 {
		url.Values(p).Set(key, strconv.Itoa(value))
	}
	return p
}

func (p Params) Values() url.Values {
	return url.Values(p)
}
