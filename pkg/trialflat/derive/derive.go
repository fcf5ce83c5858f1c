// Package derive computes the analysis columns the lab fills in after
// conversion (Choice, SameChoice, BeliefType).
//
// Each function is a row-wise transform over parallel sequences. When the
// sequences differ in length the result is as long as the shortest one.
package derive

import "unicode/utf8"

// DontKnow is the choice recorded for a "d" key press.
const DontKnow = "don't know"

// Response keys recorded by the instrument.
const (
	KeyJ = "j"
	KeyF = "f"
	KeyD = "d"
)

// ResolveChoice maps each key press in m to the chosen option:
// "j" picks l, "f" picks k, "d" yields DontKnow, anything else "".
func ResolveChoice(m, l, k []string) []string {
	n := minLen(len(m), len(l), len(k))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		switch m[i] {
		case KeyJ:
			out[i] = l[i]
		case KeyF:
			out[i] = k[i]
		case KeyD:
			out[i] = DontKnow
		}
	}
	return out
}

// ScoreSameChoice scores 1 when p matches j, 0.5 when p is DontKnow,
// and 0 otherwise.
func ScoreSameChoice(p, j []string) []float64 {
	n := minLen(len(p), len(j))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case p[i] == j[i]:
			out[i] = 1.0
		case p[i] == DontKnow:
			out[i] = 0.5
		}
	}
	return out
}

// BeliefType returns the last character of each value, or "" for empty values.
func BeliefType(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		_, size := utf8.DecodeLastRuneInString(v)
		out[i] = v[len(v)-size:]
	}
	return out
}

func minLen(lens ...int) int {
	n := lens[0]
	for _, l := range lens[1:] {
		if l < n {
			n = l
		}
	}
	return n
}
