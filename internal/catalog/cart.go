package catalog

import "slices"

// InCart reports whether code is one of cartCodes. Codes are compared exactly.
func InCart(code string, cartCodes []string) bool {
	return slices.Contains(cartCodes, code)
}
