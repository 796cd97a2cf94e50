// Package natsort implements natural-order string comparison: digit runs
// (including decimal fractions) compare numerically, and numeric chunks sort
// before textual ones. "S2" therefore sorts before "S10".
//
// The standard library offers no natural-order comparator and the sorting
// here is small enough that a dependency would not pull its weight.
package natsort

import (
	"sort"
	"strconv"
)

// Sort sorts ss in place in natural order.
func Sort(ss []string) {
	sort.Slice(ss, func(i, j int) bool { return Less(ss[i], ss[j]) })
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Compare returns -1, 0 or 1 comparing a and b chunk by chunk.
func Compare(a, b string) int {
	for a != "" && b != "" {
		var (
			ca, cb     string
			na, nb     float64
			aNum, bNum bool
		)
		ca, na, aNum, a = nextChunk(a)
		cb, nb, bNum, b = nextChunk(b)

		switch {
		case aNum && bNum:
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			// Equal values with different spellings ("01" vs "1") fall
			// back to the textual form so ordering stays total.
			if ca != cb {
				if ca < cb {
					return -1
				}
				return 1
			}
		case aNum:
			return -1
		case bNum:
			return 1
		default:
			if ca != cb {
				if ca < cb {
					return -1
				}
				return 1
			}
		}
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextChunk splits off the leading chunk of s: either a maximal numeric run
// (digits with at most one interior decimal point) or a maximal non-digit
// run. For numeric chunks it also returns the parsed value.
func nextChunk(s string) (chunk string, value float64, numeric bool, rest string) {
	if isDigit(s[0]) {
		i := 1
		dotted := false
		for i < len(s) {
			if isDigit(s[i]) {
				i++
				continue
			}
			if s[i] == '.' && !dotted && i+1 < len(s) && isDigit(s[i+1]) {
				dotted = true
				i++
				continue
			}
			break
		}
		chunk = s[:i]
		v, err := strconv.ParseFloat(chunk, 64)
		if err != nil {
			return chunk, 0, false, s[i:]
		}
		return chunk, v, true, s[i:]
	}

	i := 1
	for i < len(s) && !isDigit(s[i]) {
		i++
	}
	return s[:i], 0, false, s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
