// Package numeric centralizes the scalar precision and epsilon tolerance
// shared by every numeric guard in the module: versor inversion, rotor
// normalization, and plane-wedge magnitude checks all read the same
// Policy instead of each hard-coding its own threshold.
//
// The scalar type is standardized on float64 throughout GASmith; Policy
// exists so the epsilon half of that decision travels as one value
// instead of being duplicated at every call site.
package numeric
