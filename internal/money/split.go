package money

import "fmt"

// Split divides total into n slices of equal size. Any remainder left by the
// integer division is added to the first slice, so the slices always sum to
// exactly total.
func Split(total Amount, n int) ([]Amount, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot split into %d parts", n)
	}

	base := total / Amount(n)
	remainder := total - base*Amount(n)

	parts := make([]Amount, n)
	for i := range parts {
		parts[i] = base
	}
	parts[0] += remainder
	return parts, nil
}
