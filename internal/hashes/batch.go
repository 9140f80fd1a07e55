package hashes

import (
	"bytes"
	"sync"

	md5simd "github.com/minio/md5-simd"
)

var (
	md5Once   sync.Once
	md5Server md5simd.Server
)

func getMD5Server() md5simd.Server {
	md5Once.Do(func() { md5Server = md5simd.NewServer() })
	return md5Server
}

// MatchMD5Batch digests every candidate through the shared md5-simd server
// and returns the index of the first one equal to target, or -1. Writing all
// candidates before the first Sum lets the server fill its SIMD lanes, so
// callers should hand over batches rather than single values.
func MatchMD5Batch(candidates [][]byte, target []byte) int {
	srv := getMD5Server()
	hashers := make([]md5simd.Hasher, len(candidates))
	for i, c := range candidates {
		h := srv.NewHash()
		h.Write(c)
		hashers[i] = h
	}
	idx := -1
	for i, h := range hashers {
		if idx < 0 && bytes.Equal(h.Sum(nil), target) {
			idx = i
		}
		h.Close()
	}
	return idx
}
