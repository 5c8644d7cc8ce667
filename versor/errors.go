package versor

import "errors"

// ErrSingularOperand indicates a Versor or Rotor's norm fell at or below
// the governing numeric.Policy's epsilon, so it cannot be inverted or
// normalized.
var ErrSingularOperand = errors.New("versor: operand norm is too small to invert")
