package advanced

import "math"

// Small fixed-size matrices. The only hot path is Matrix33.Determinant, which
// backs the in-circle predicate; the others exist for minors and for the lifted
// 4x4 form of the same predicate.

type Matrix22 struct {
	M [2][2]float64
}

func (m *Matrix22) Determinant() float64 {
	return m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]
}

type Matrix33 struct {
	M [3][3]float64
}

// Minor returns the 2x2 matrix left after deleting row and col.
func (m *Matrix33) Minor(row, col int) Matrix22 {
	var r Matrix22
	ri := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			r.M[ri][ci] = m.M[i][j]
			ci++
		}
		ri++
	}
	return r
}

// Determinant by cofactor expansion along the first row.
func (m *Matrix33) Determinant() float64 {
	var det float64
	sign := 1.0
	for j := 0; j < 3; j++ {
		minor := m.Minor(0, j)
		det += sign * m.M[0][j] * minor.Determinant()
		sign = -sign
	}
	return det
}

type Matrix44 struct {
	M [4][4]float64
}

// Minor returns the 3x3 matrix left after deleting row and col.
func (m *Matrix44) Minor(row, col int) Matrix33 {
	var r Matrix33
	ri := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			r.M[ri][ci] = m.M[i][j]
			ci++
		}
		ri++
	}
	return r
}

func (m *Matrix44) Determinant() float64 {
	var det float64
	sign := 1.0
	for j := 0; j < 4; j++ {
		minor := m.Minor(0, j)
		det += sign * m.M[0][j] * minor.Determinant()
		sign = -sign
	}
	return det
}

// magnitude is the determinant expansion with every term taken in absolute
// value. It bounds how large the rounding error in Determinant can be, so
// callers compare det against eps*magnitude instead of a bare constant.
func (m *Matrix33) magnitude() float64 {
	var sum float64
	for j := 0; j < 3; j++ {
		minor := m.Minor(0, j)
		sum += math.Abs(m.M[0][j]) * (math.Abs(minor.M[0][0]*minor.M[1][1]) + math.Abs(minor.M[0][1]*minor.M[1][0]))
	}
	return sum
}
