package hashes

import (
	"strings"
	"testing"
)

var digestVectors = []struct {
	algo Algorithm
	in   string
	want string
}{
	{MD5, "password", "5f4dcc3b5aa765d61d8327deb882cf99"},
	{MD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
	{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{SHA224, "abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{SHA384, "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	{SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{SHA3_224, "abc", "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
	{SHA3_256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	{SHA3_384, "abc", "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25"},
	{SHA3_512, "abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	{BLAKE2b, "abc", "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
	{BLAKE2s, "abc", "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
	{SHAKE128, "", "7f9c2ba4e88f827d616045507605853e"},
	{SHAKE256, "", "46b9dd2b0ba88d13233b3feb743eeb24"},
}

func TestDigestVectors(t *testing.T) {
	for _, v := range digestVectors {
		if got := v.algo.Digest(v.in); got != v.want {
			t.Errorf("%s(%q) = %s, want %s", v.algo, v.in, got, v.want)
		}
	}
}

func TestDigestsAreLowercaseAndSized(t *testing.T) {
	for _, a := range Supported() {
		d := a.Digest("abc")
		if len(d) != a.HexLen() {
			t.Errorf("%s: digest length %d, want %d", a, len(d), a.HexLen())
		}
		if d != strings.ToLower(d) {
			t.Errorf("%s: digest not lowercase: %s", a, d)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, a := range Supported() {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != a {
			t.Errorf("Parse(%s) = %s", a, got)
		}
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	got, err := Parse("  SHA3_256 ")
	if err != nil {
		t.Fatal(err)
	}
	if got != SHA3_256 {
		t.Errorf("Parse = %s, want sha3_256", got)
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("sha0"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestSupported(t *testing.T) {
	if got := len(Supported()); got != 14 {
		t.Fatalf("Supported() has %d algorithms, want 14", got)
	}
	if got := len(Names()); got != 14 {
		t.Fatalf("Names() has %d entries, want 14", got)
	}
}
