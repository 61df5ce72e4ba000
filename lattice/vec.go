package lattice

import "math"

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v − w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns s·v.
func (v Vec2) Scale(s int) Vec2 { return Vec2{s * v.X, s * v.Y} }

// Neg returns −v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Rightward returns v or −v, whichever has X ≥ 0. A lattice direction and
// its negation are the same direction; this picks one for display.
func (v Vec2) Rightward() Vec2 {
	if v.X < 0 {
		return v.Neg()
	}

	return v
}

// Dot returns the inner product v·w.
func (v Vec2) Dot(w Vec2) int { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of v×w. Zero means v and w are parallel
// (or one of them is zero).
func (v Vec2) Cross(w Vec2) int { return v.X*w.Y - w.X*v.Y }

// Parallel reports whether v and w lie on one line through the origin.
func (v Vec2) Parallel(w Vec2) bool { return v.Cross(w) == 0 }

// Norm2 returns the squared Euclidean length, kept integral so that norm
// comparisons stay exact.
func (v Vec2) Norm2() int { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Sqrt(float64(v.Norm2())) }

// Independent reports whether the basis vectors are non-parallel.
func (b Basis) Independent() bool { return !b.V1.Parallel(b.V2) }

// Ratio returns |V1| / |V2|.
func (b Basis) Ratio() float64 { return b.V1.Len() / b.V2.Len() }

// Error returns |1 − Ratio()|, zero for two vectors of equal length.
func (b Basis) Error() float64 { return math.Abs(1.0 - b.Ratio()) }

// CosAngle returns |V1·V2| / (|V1|·|V2|): 0 for perpendicular vectors,
// 1 for parallel ones.
func (b Basis) CosAngle() float64 {
	return math.Abs(float64(b.V1.Dot(b.V2)) / (b.V1.Len() * b.V2.Len()))
}
