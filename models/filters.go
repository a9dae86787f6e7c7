package models

import (
	"sort"
	"strings"
)

// StockFilter narrows the catalog by availability.
type StockFilter string

const (
	StockAll StockFilter = "all"
	StockIn  StockFilter = "in"
	StockOut StockFilter = "out"
)

// CategoryAll is the wildcard category that matches everything.
const CategoryAll = "all"

// ProductFilter is the client-side predicate applied to the fetched catalog.
// All criteria are AND-combined; zero values leave a criterion unconstrained.
type ProductFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Stock    StockFilter
}

// Match reports whether a product satisfies every criterion.
func (f ProductFilter) Match(p Product) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(name, q) && !strings.Contains(desc, q) {
			return false
		}
	}

	if f.Category != "" && f.Category != CategoryAll {
		if !strings.EqualFold(p.Category, f.Category) {
			return false
		}
	}

	price := p.Price.Float64()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}

	switch f.Stock {
	case StockIn:
		return p.InStock
	case StockOut:
		return !p.InStock
	}
	return true
}

// FilterProducts applies the filter over the full fetched list.
func FilterProducts(products []Product, f ProductFilter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryOptions derives the category dropdown from the fetched catalog:
// the distinct set of categories present, lower-cased, with the "all"
// wildcard first.
func CategoryOptions(products []Product) []string {
	seen := make(map[string]bool)
	for _, p := range products {
		if p.Category != "" {
			seen[strings.ToLower(p.Category)] = true
		}
	}

	options := make([]string, 0, len(seen)+1)
	for c := range seen {
		options = append(options, c)
	}
	sort.Strings(options)
	return append([]string{CategoryAll}, options...)
}
