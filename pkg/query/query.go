// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses multi-valued URL query parameters such as
// ?category=singers,djs&category=dancers.
package query

import "strings"

// StringSlice splits a comma-separated value into trimmed, non-empty items.
func StringSlice(val string) []string {
	var res []string
	for item := range strings.SplitSeq(val, ",") {
		if clean := strings.TrimSpace(item); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Multi flattens a parameter that may be repeated (?c=a&c=b), comma separated
// (?c=a,b) or both. Duplicates are removed, keeping first occurrence order.
func Multi(vals []string) []string {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range vals {
		for _, item := range StringSlice(v) {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			res = append(res, item)
		}
	}
	return res
}
