package linmap

import (
	"gonum.org/v1/gonum/mat"

	"github.com/TheZerth/GASmith/algebra"
	"github.com/TheZerth/GASmith/blade"
	"github.com/TheZerth/GASmith/product"
)

// LinearMap is a linear map on the vector-grade subspace of an Algebra,
// stored as a dense n-by-n matrix. Apply extends it to every grade as
// an outermorphism.
type LinearMap struct {
	alg *algebra.Algebra
	m   *mat.Dense
}

// Identity returns the LinearMap that fixes every vector of alg.
func Identity(alg *algebra.Algebra) *LinearMap {
	n := alg.Dimensions()
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return &LinearMap{alg: alg, m: m}
}

// FromRows builds a LinearMap from a row-major dense matrix: rows[i][j]
// is the coefficient of e_i in the image of e_j (the same row/column
// convention as Get and Set). Returns
// ErrDimensionMismatch if rows is not square with side alg.Dimensions().
func FromRows(alg *algebra.Algebra, rows [][]float64) (*LinearMap, error) {
	n := alg.Dimensions()
	if len(rows) != n {
		return nil, ErrDimensionMismatch
	}

	data := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
		data = append(data, row...)
	}

	return &LinearMap{alg: alg, m: mat.NewDense(n, n, data)}, nil
}

// Algebra returns the Algebra this map was constructed for.
func (lm *LinearMap) Algebra() *algebra.Algebra { return lm.alg }

// inRange reports whether row and col both fall in [0, n) for lm's
// algebra dimension count.
func (lm *LinearMap) inRange(row, col int) bool {
	n := lm.alg.Dimensions()

	return row >= 0 && row < n && col >= 0 && col < n
}

// Get returns the matrix entry mapping e_col into the e_row component of
// its image. Returns ErrOutOfRange if row or col falls outside
// [0, n).
func (lm *LinearMap) Get(row, col int) (float64, error) {
	if !lm.inRange(row, col) {
		return 0, ErrOutOfRange
	}

	return lm.m.At(row, col), nil
}

// Set assigns the matrix entry mapping e_col into the e_row component of
// its image. Returns ErrOutOfRange if row or col falls outside
// [0, n).
func (lm *LinearMap) Set(row, col int, v float64) error {
	if !lm.inRange(row, col) {
		return ErrOutOfRange
	}

	lm.m.Set(row, col, v)

	return nil
}

// ApplyToVector applies lm to the grade-1 part of v, ignoring every
// higher-grade component. Returns ErrAlgebraMismatch if v belongs to a
// different algebra than lm.
func (lm *LinearMap) ApplyToVector(v algebra.Multivector) (algebra.Multivector, error) {
	alg := v.Algebra()
	if alg == nil {
		return algebra.Multivector{}, algebra.ErrNoAlgebra
	}
	if alg != lm.alg {
		return algebra.Multivector{}, ErrAlgebraMismatch
	}

	n := alg.Dimensions()
	in := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		in.SetVec(i, v.Component(blade.AxisBit(i)))
	}

	var out mat.VecDense
	out.MulVec(lm.m, in)

	result := algebra.NewMultivector(alg)
	for i := 0; i < n; i++ {
		_ = result.SetComponent(blade.AxisBit(i), out.AtVec(i))
	}

	return result, nil
}

// Apply extends lm to an outermorphism acting on every grade of mv: the
// image of a grade-k blade is the wedge product of the images of its k
// constituent basis vectors, and the image of mv is the linear
// combination of those blade images weighted by mv's coefficients.
func (lm *LinearMap) Apply(mv algebra.Multivector) (algebra.Multivector, error) {
	alg := mv.Algebra()
	if alg == nil {
		return algebra.Multivector{}, algebra.ErrNoAlgebra
	}
	if alg != lm.alg {
		return algebra.Multivector{}, ErrAlgebraMismatch
	}

	out := algebra.NewMultivector(alg)
	for m := 0; m < mv.Len(); m++ {
		coeff := mv.Component(blade.Mask(m))
		if coeff == 0 {
			continue
		}

		image, err := lm.applyBlade(alg, blade.Mask(m))
		if err != nil {
			return algebra.Multivector{}, err
		}

		summed, err := algebra.Add(out, image.Scaled(coeff))
		if err != nil {
			return algebra.Multivector{}, err
		}
		out = summed
	}

	return out, nil
}

// applyBlade returns the image of the basis blade identified by mask
// under the outermorphism extension of lm.
func (lm *LinearMap) applyBlade(alg *algebra.Algebra, mask blade.Mask) (algebra.Multivector, error) {
	if mask == 0 {
		return algebra.Scalar(alg, 1), nil
	}

	acc := algebra.Scalar(alg, 1)
	for axis := 0; axis < alg.Dimensions(); axis++ {
		if !mask.HasAxis(axis) {
			continue
		}

		imageVector, err := lm.ApplyToVector(algebra.Basis(alg, axis))
		if err != nil {
			return algebra.Multivector{}, err
		}

		wedged, err := product.Wedge(acc, imageVector)
		if err != nil {
			return algebra.Multivector{}, err
		}
		acc = wedged
	}

	return acc, nil
}
