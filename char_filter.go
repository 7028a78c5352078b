package goanalyzer

import "strings"

// CharFilter rewrites raw text before tokenization. Token start offsets refer
// to the filtered text, not the pre-filter input.
type CharFilter interface {
	Filter(string) string
}

// MappingCharFilter replaces every occurrence of a key with its mapped value
// (ex. ":(" → "sad").
type MappingCharFilter struct {
	mapper map[string]string
}

func NewMappingCharFilter(mapper map[string]string) MappingCharFilter {
	return MappingCharFilter{mapper: mapper}
}

func (c MappingCharFilter) Filter(s string) string {
	for k, v := range c.mapper {
		s = strings.Replace(s, k, v, -1)
	}
	return s
}
