package hashes

import "regexp"

var reHex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// ValidTarget reports whether s could be a hex digest of any supported
// algorithm. It checks the alphabet only; length narrowing is Resolve's job.
func ValidTarget(s string) bool {
	return s != "" && reHex.MatchString(s)
}

// byLength maps hex digest lengths to their producers. Ambiguous lengths
// list every producer; lengths no supported algorithm emits are absent.
var byLength = map[int][]Algorithm{
	32:  {MD5},
	40:  {SHA1},
	56:  {SHA224},
	64:  {SHA256, SHA3_256, BLAKE2s},
	96:  {SHA384, SHA3_384},
	128: {SHA512, SHA3_512, BLAKE2b},
}

// ByLength returns the algorithms whose hex digest length is hexLen. The
// returned slice is a copy.
func ByLength(hexLen int) ([]Algorithm, bool) {
	set, ok := byLength[hexLen]
	if !ok {
		return nil, false
	}
	out := make([]Algorithm, len(set))
	copy(out, set)
	return out, true
}

// Resolve picks the candidate algorithm set for one target. A forced
// algorithm always wins. Otherwise the target's own length narrows the set
// when it maps to known digest sizes, then lengthHint gets the same chance,
// and an unrecognized length keeps every algorithm in play.
func Resolve(forced *Algorithm, target string, lengthHint int) []Algorithm {
	if forced != nil {
		return []Algorithm{*forced}
	}
	if set, ok := ByLength(len(target)); ok {
		return set
	}
	if set, ok := ByLength(lengthHint); ok {
		return set
	}
	return Supported()
}
