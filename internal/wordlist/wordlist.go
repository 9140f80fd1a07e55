// Package wordlist loads candidate word files for dictionary attacks.
package wordlist

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Load reads path and returns its non-empty lines with surrounding
// whitespace trimmed. Bytes are decoded as Latin-1 so binary junk in common
// leaked wordlists never fails the read; every byte maps to some rune.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Sources returns the wordlist paths to try in order. A custom list is an
// extra source tried before the generic fallbacks, not a replacement.
func Sources(custom string, generic []string) []string {
	out := make([]string, 0, len(generic)+1)
	if custom != "" {
		out = append(out, custom)
	}
	return append(out, generic...)
}
