// SPDX-License-Identifier: MIT

package transit

import (
	"slices"
	"strconv"
	"strings"
)

// CompareLines orders line ids numerically: ids that parse as integers come
// first by value, the rest follow in string order. Numeric ties such as
// "7" and "07" fall back to string order.
func CompareLines(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}

	return strings.Compare(a, b)
}

// SortLines sorts ids in place with CompareLines and returns them.
func SortLines(ids []string) []string {
	slices.SortFunc(ids, CompareLines)
	return ids
}
