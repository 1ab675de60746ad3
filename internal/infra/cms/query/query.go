// Package query encodes list requests into the backend's bracketed query-string dialect,
// e.g. filters[title][$eqi]=Bali&pagination[page]=1&pagination[pageSize]=10&populate=*.
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Operator is a filter comparison understood by the backend.
type Operator string

// Supported filter operators.
const (
	Eq        Operator = "$eq"
	Eqi       Operator = "$eqi" // exact match ignoring case
	Contains  Operator = "$contains"
	Containsi Operator = "$containsi"
)

// PopulateAll asks the backend to include every first-level relation.
const PopulateAll = "*"

// Filter is a single predicate on a (possibly nested) field path.
type Filter struct {
	Path     []string
	Operator Operator
	Value    string
}

// Request is a structured list request.
// Zero pagination values and empty filter values are left out of the encoding.
type Request struct {
	Page     int
	PageSize int
	Populate []string
	Filters  []Filter
	Sort     []string
}

// Where appends a filter and returns the request for chaining.
func (r Request) Where(op Operator, value string, path ...string) Request {
	filters := make([]Filter, len(r.Filters), len(r.Filters)+1)
	copy(filters, r.Filters)
	r.Filters = append(filters, Filter{Path: path, Operator: op, Value: value})
	return r
}

// Encode renders the request deterministically: filters in insertion order,
// then pagination, populate and sort. Parameters whose value is empty are omitted.
func (r Request) Encode() string {
	var b builder

	for _, f := range r.Filters {
		if f.Value == "" || len(f.Path) == 0 {
			continue
		}
		key := "filters" + bracket(f.Path...) + bracket(string(f.Operator))
		b.add(key, f.Value)
	}

	if r.Page > 0 {
		b.add("pagination[page]", strconv.Itoa(r.Page))
	}
	if r.PageSize > 0 {
		b.add("pagination[pageSize]", strconv.Itoa(r.PageSize))
	}

	populate := nonEmpty(r.Populate)
	switch {
	case len(populate) == 1 && populate[0] == PopulateAll:
		b.add("populate", PopulateAll)
	default:
		for i, p := range populate {
			b.add(fmt.Sprintf("populate[%d]", i), p)
		}
	}

	for i, s := range nonEmpty(r.Sort) {
		b.add(fmt.Sprintf("sort[%d]", i), s)
	}

	return b.String()
}

// EncodeParams encodes a flat parameter map whose keys are already in the
// bracketed form. Keys are sorted; nil and empty-string values are omitted.
func EncodeParams(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b builder
	for _, k := range keys {
		v := params[k]
		if v == nil {
			continue
		}
		s := fmt.Sprint(v)
		if s == "" {
			continue
		}
		b.add(k, s)
	}
	return b.String()
}

// ArticleListRequest builds the request used by the article list view:
// exact case-insensitive matching on title and category name, every relation populated.
func ArticleListRequest(page, pageSize int, title, category string) Request {
	return Request{
		Page:     page,
		PageSize: pageSize,
		Populate: []string{PopulateAll},
	}.
		Where(Eqi, title, "title").
		Where(Eqi, category, "category", "name")
}

type builder struct {
	parts []string
}

func (b *builder) add(key, value string) {
	b.parts = append(b.parts, escapeKey(key)+"="+url.QueryEscape(value))
}

func (b *builder) String() string {
	return strings.Join(b.parts, "&")
}

func bracket(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString("[")
		sb.WriteString(s)
		sb.WriteString("]")
	}
	return sb.String()
}

// escapeKey escapes a key but keeps the bracket and operator characters literal,
// which is the form the backend's qs parser documents.
func escapeKey(key string) string {
	escaped := url.QueryEscape(key)
	return strings.NewReplacer("%5B", "[", "%5D", "]", "%24", "$").Replace(escaped)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
