package pmsp

import "github.com/schedkit/pmsp/internal/errors"

// ValidatePermutation checks that order is a permutation of 0..n-1.
func ValidatePermutation(order []int, n int) error {
	if len(order) != n {
		return errors.Ef(errors.KindInvalidInstance,
			"ordering length must be %d (got %d)", n, len(order))
	}
	seen := make([]bool, n)
	for i, v := range order {
		if v < 0 || v >= n {
			return errors.Ef(errors.KindInvalidInstance,
				"ordering[%d]=%d out of range [0,%d)", i, v, n)
		}
		if seen[v] {
			return errors.Ef(errors.KindInvalidInstance,
				"duplicate job %d in ordering", v)
		}
		seen[v] = true
	}
	return nil
}
