package priority

// Rolling-hash parameters: radix over bytes and a small prime modulus.
const (
	radix   = 256
	modulus = 101
)

// Pattern is a precompiled Rabin–Karp search pattern.
// The zero value matches nothing.
type Pattern struct {
	text string
	hash int
	// lead is radix^(len-1) mod modulus, the weight of the outgoing byte.
	lead int
}

// Compile precomputes the hash of p.
func Compile(p string) Pattern {
	pt := Pattern{text: p, lead: 1}
	for i := 0; i < len(p)-1; i++ {
		pt.lead = (pt.lead * radix) % modulus
	}
	for i := 0; i < len(p); i++ {
		pt.hash = (radix*pt.hash + int(p[i])) % modulus
	}

	return pt
}

// String returns the pattern text.
func (p Pattern) String() string { return p.text }

// In reports whether the pattern occurs in text. Matching is byte-exact;
// every hash hit is verified, so collisions never produce false positives.
// An empty pattern, or one longer than text, never matches.
func (p Pattern) In(text string) bool {
	n, m := len(text), len(p.text)
	if m == 0 || m > n {
		return false
	}

	t := 0
	for i := 0; i < m; i++ {
		t = (radix*t + int(text[i])) % modulus
	}

	for i := 0; i <= n-m; i++ {
		if t == p.hash && text[i:i+m] == p.text {
			return true
		}
		if i < n-m {
			t = (radix*(t-int(text[i])*p.lead) + int(text[i+m])) % modulus
			if t < 0 {
				t += modulus
			}
		}
	}

	return false
}

// Contains reports whether pattern occurs in text using Rabin–Karp.
func Contains(text, pattern string) bool {
	return Compile(pattern).In(text)
}
