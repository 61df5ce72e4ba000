package lattice

// Reduce performs Lagrange reduction of a 2D integer basis and returns a
// basis of the same lattice made of (near-)shortest vectors.
//
// Steps:
//  1. Order the pair so that V1 is the longer vector.
//  2. While |V2| < |V1|:
//     q  = round(V1·V2 / |V2|²) as (2·num + den) / (2·den)
//     V1 = V1 − q·V2
//     swap V1, V2
//
// The larger squared norm strictly decreases each round, so the loop ends.
// Norms are compared squared and q uses Go integer division (truncation
// toward zero); no floating point is involved. A dependent input pair
// stops as soon as one vector collapses to zero.
func Reduce(b Basis) Basis {
	u, v := b.V1, b.V2
	if v.Norm2() > u.Norm2() {
		u, v = v, u
	}

	for v.Norm2() < u.Norm2() {
		num := u.Dot(v)
		den := v.Norm2()
		if den == 0 {
			break
		}
		q := (2*num + den) / (2 * den)
		u, v = v, u.Sub(v.Scale(q))
	}

	return Basis{V1: u, V2: v}
}
