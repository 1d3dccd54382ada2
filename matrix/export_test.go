// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the determinant cache.
//
// Purpose:
//   - Let matrix_test observe whether a Determinant value is memoized without
//     widening the production API.

// DeterminantCache_TestOnly returns the cached determinant and its validity.
func DeterminantCache_TestOnly(m *Dense) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.det, m.detValid
}

// WrapColumn_TestOnly forwards to the private wrapColumn helper.
var WrapColumn_TestOnly = wrapColumn
