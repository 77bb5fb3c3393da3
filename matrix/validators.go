package matrix

import "fmt"

// ValidateNotNil ensures m is non-nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return fmt.Errorf("matrix: ValidateNotNil: %w", ErrNilMatrix)
	}
	return nil
}
