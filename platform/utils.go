/*
 * Copyright 2025 Daniel C. Brotsky. All rights reserved.
 * All the copyrighted work in this repository is licensed under the
 * GNU Affero General Public License v3, reproduced in the LICENSE file.
 */

package platform

import "strings"

func SetIfMissing[T int64 | float64 | string | bool](loc *T, val T) {
	if *loc == *new(T) {
		*loc = val
	}
}

// SplitAndTrim splits a comma-separated list, trimming whitespace
// and dropping empty elements.
func SplitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
