package utils

import "strings"

// IsValidCPF reports whether s is a valid CPF (Brazilian national ID).
// Formatting characters are stripped, so both "529.982.247-25" and
// "52998224725" are accepted. Numbers made of a single repeated digit carry a
// technically correct checksum but are not issued, so they are rejected.
func IsValidCPF(s string) bool {
	var digits []int
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	return checkDigit(digits[:10], 11) == digits[10]
}

// checkDigit computes a CPF verification digit over the given prefix, with
// weights descending from firstWeight to 2. A remainder of 10 maps to 0.
func checkDigit(prefix []int, firstWeight int) int {
	sum := 0
	for i, d := range prefix {
		sum += d * (firstWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return rest
}

// NormalizeCPF strips everything but digits from s.
func NormalizeCPF(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
