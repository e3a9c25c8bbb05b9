package utils

import "strings"

func ToStringSlice(slice []any) []string {
	stringSlice := make([]string, 0)
	for _, v := range slice {
		if s, ok := v.(string); ok {
			stringSlice = append(stringSlice, s)
		}
	}
	return stringSlice
}

// ScopeList splits a scope claim. Claims may be a space separated string or a JSON array.
func ScopeList(v any) []string {
	switch s := v.(type) {
	case string:
		return strings.Fields(s)
	case []any:
		return ToStringSlice(s)
	case []string:
		return s
	}
	return nil
}

// Page clamps offset and limit to a slice of length n. A limit <= 0 means no limit.
func Page(n, offset, limit int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		return n, n
	}
	end = n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}
