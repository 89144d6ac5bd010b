package upstream

import (
	"net/url"
	"strconv"
	"strings"
)

// Query collects only the parameters a caller explicitly supplied. Zero ids and
// blank strings are dropped instead of being sent empty.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

func (q *Query) Set(key, value string) *Query {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	q.values.Set(key, value)
	return q
}

func (q *Query) Int(key string, value int64) *Query {
	if value == 0 {
		return q
	}
	q.values.Set(key, strconv.FormatInt(value, 10))
	return q
}

func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}
