package grading

import "unicode"

// Normalized compares answers after casefolding, dropping punctuation and
// collapsing runs of whitespace.
type Normalized struct{}

func (Normalized) Grade(answer, key string) bool {
	return normalize(answer) == normalize(key)
}

// Fuzzy accepts normalized answers within MaxEdit edits of the key.
type Fuzzy struct{ MaxEdit int }

func (f Fuzzy) Grade(answer, key string) bool {
	na, nk := normalize(answer), normalize(key)
	if na == nk {
		return true
	}
	if f.MaxEdit <= 0 || nk == "" {
		return false
	}
	return levenshtein(na, nk) <= f.MaxEdit
}

// normalize does simple casefolding and trims punctuation/extra spaces.
func normalize(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsPunct(r):
			// skip
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}

// levenshtein computes edit distance (insertion, deletion, substitution cost 1).
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			dp[j] = min(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return dp[m]
}
