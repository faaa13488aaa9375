package utils

// RoundUp2 - Rounds up the given number to the nearest exponent of 2
func RoundUp2(a int64) (n int64) {
	n = 1
	for n < a {
		n <<= 1
	}

	return
}
