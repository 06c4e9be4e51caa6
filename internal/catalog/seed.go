package catalog

import (
	"math/big"
	"math/rand"
	"strconv"
	"strings"
)

// MaxSeed is the largest seed RandomSeed produces.
const MaxSeed = 2147483646

// RandomSeed returns a uniformly chosen seed in [0, MaxSeed] as decimal text.
func RandomSeed() string {
	return strconv.FormatInt(rand.Int63n(MaxSeed+1), 10)
}

// AdjustSeed adds delta to the integer that current starts with, so "12abc" reads as 12
// and "7.9" as 7. Text without leading digits counts as 0. The result is not clamped and
// keeps its magnitude beyond int64.
func AdjustSeed(current string, delta int64) string {
	n, ok := new(big.Int).SetString(leadingInteger(current), 10)
	if !ok {
		n = new(big.Int)
	}
	return n.Add(n, big.NewInt(delta)).String()
}

// leadingInteger returns the optional sign and digit run at the start of trimmed s,
// or "" when s does not start with a digit.
func leadingInteger(s string) string {
	s = strings.TrimSpace(s)
	start := 0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		start = 1
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return ""
	}
	return s[:end]
}
