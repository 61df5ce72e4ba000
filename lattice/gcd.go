package lattice

// GCD returns the greatest common divisor of a and b by repeated
// remainder-and-swap. GCD(0, b) is b and GCD(a, 0) is a.
// Complexity: O(log min(a,b)).
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Coprime reports whether GCD(a, b) == 1.
func Coprime(a, b int) bool {
	return GCD(a, b) == 1
}
