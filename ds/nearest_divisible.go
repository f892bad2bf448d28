package ds

// NearestDivisibleByM returns the smallest multiple of m that is not
// below n, e.g. the number of 4-slot groups a directory needs.
func NearestDivisibleByM(n int, m int) int {
	for i := n; i < n+m; i++ {
		if i%m == 0 {
			return i
		}
	}

	panic(ErrUnreachableCode{Caller: "NearestDivisibleByM"})
}
