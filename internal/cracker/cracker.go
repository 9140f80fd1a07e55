// Package cracker runs dictionary attacks: every password/salt pair from a
// wordlist, in the configured concatenation orders, against every candidate
// algorithm, across a bounded pool of workers that stops on the first hit.
package cracker

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandokanCat/open-utils/internal/hashes"
	"github.com/sandokanCat/open-utils/internal/wordlist"
)

// defaultChunkSize is how many pairs a worker takes per batch. Large enough
// to keep the md5-simd lanes full, small enough that cancellation bites
// quickly.
const defaultChunkSize = 512

// minSIMDBatch is the smallest batch worth routing through the md5-simd
// server; below it the scalar path wins.
const minSIMDBatch = 4

// Options tunes one Cracker.
type Options struct {
	// Workers is the number of hashing goroutines. Zero or less means one
	// per CPU.
	Workers int
	// ChunkSize is the number of pairs dispatched per work item. Zero or
	// less means defaultChunkSize.
	ChunkSize int
	Logger    zerolog.Logger
	// Event receives lifecycle notifications ("start", "missing", "found",
	// "done") with a small payload. May be nil.
	Event func(event string, kv map[string]any)
	// Progress receives cumulative finished-unit counts while an attack
	// runs. Called from worker goroutines. May be nil.
	Progress func(done, total uint64)
}

// Match is the first secret found for a target.
type Match struct {
	Secret    string
	Algorithm hashes.Algorithm
}

// Outcome reports how an attack on one target ended.
type Outcome struct {
	Found     bool
	Hash      string
	Secret    string
	Algorithm hashes.Algorithm
	Digest    string
	Elapsed   time.Duration
}

// Cracker runs dictionary attacks against hex digests.
type Cracker struct {
	opts Options
}

func New(opts Options) *Cracker {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = defaultChunkSize
	}
	if opts.Event == nil {
		opts.Event = func(string, map[string]any) {}
	}
	if opts.Progress == nil {
		opts.Progress = func(uint64, uint64) {}
	}
	return &Cracker{opts: opts}
}

// Attack tries every wordlist in order until one yields a match for target.
// A missing wordlist is skipped with a warning; any other read error aborts.
// On interruption the context error is returned alongside the partial
// outcome.
func (c *Cracker) Attack(ctx context.Context, target string, lists []string, algos []hashes.Algorithm, mode Mode) (Outcome, error) {
	start := time.Now()
	out := Outcome{Hash: target}

	for _, path := range lists {
		words, err := wordlist.Load(path)
		if err != nil {
			if os.IsNotExist(err) {
				c.opts.Logger.Warn().Str("wordlist", path).Msg("wordlist not found, skipping")
				c.opts.Event("missing", map[string]any{"wordlist": path})
				continue
			}
			out.Elapsed = time.Since(start)
			return out, err
		}
		if len(words) == 0 {
			continue
		}

		total := uint64(len(algos)) * uint64(len(words)) * uint64(len(words))
		c.opts.Event("start", map[string]any{
			"wordlist": path,
			"words":    len(words),
			"units":    total,
			"workers":  c.opts.Workers,
		})

		match, tried, err := c.searchList(ctx, target, words, algos, mode)
		if err != nil {
			out.Elapsed = time.Since(start)
			return out, err
		}
		if match != nil {
			out.Found = true
			out.Secret = match.Secret
			out.Algorithm = match.Algorithm
			out.Digest = match.Algorithm.Digest(match.Secret)
			out.Elapsed = time.Since(start)
			c.opts.Logger.Info().
				Str("hash", target).
				Str("algorithm", match.Algorithm.String()).
				Uint64("tried", tried).
				Msg("match found")
			c.opts.Event("found", map[string]any{
				"secret":    match.Secret,
				"algorithm": match.Algorithm.String(),
				"tried":     tried,
			})
			c.opts.Event("done", map[string]any{"wordlist": path, "found": true, "tried": tried})
			return out, nil
		}
		c.opts.Event("done", map[string]any{"wordlist": path, "found": false, "tried": tried})
	}
	out.Elapsed = time.Since(start)
	return out, nil
}

// pair is one password/salt combination from the cross product.
type pair struct {
	password string
	salt     string
}

// batch is one unit of worker input: a run of pairs to evaluate under a
// single algorithm. The pairs slice is shared between batches and must not
// be mutated.
type batch struct {
	algo  hashes.Algorithm
	pairs []pair
}

func (c *Cracker) searchList(ctx context.Context, target string, words []string, algos []hashes.Algorithm, mode Mode) (*Match, uint64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		found atomic.Bool
		match atomic.Value
		done  atomic.Uint64
	)
	total := uint64(len(algos)) * uint64(len(words)) * uint64(len(words))

	// Digests are emitted lowercase, so only a lowercase target can ever
	// match; decoding it once enables raw byte comparison in the hot loop.
	var targetRaw []byte
	if target == strings.ToLower(target) {
		if raw, err := hex.DecodeString(target); err == nil {
			targetRaw = raw
		}
	}

	work := make(chan batch, c.opts.Workers*2)
	var wg sync.WaitGroup
	for i := 0; i < c.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range work {
				if found.Load() || ctx.Err() != nil {
					continue
				}
				if m := evalBatch(b, target, targetRaw, mode); m != nil {
					if found.CompareAndSwap(false, true) {
						match.Store(*m)
						cancel()
					}
				}
				c.opts.Progress(done.Add(uint64(len(b.pairs))), total)
			}
		}()
	}

	go func() {
		defer close(work)
		buf := make([]pair, 0, c.opts.ChunkSize)
		flush := func() bool {
			if len(buf) == 0 {
				return true
			}
			chunk := make([]pair, len(buf))
			copy(chunk, buf)
			buf = buf[:0]
			for _, a := range algos {
				select {
				case work <- batch{algo: a, pairs: chunk}:
				case <-ctx.Done():
					return false
				}
			}
			return true
		}
		for _, password := range words {
			for _, salt := range words {
				buf = append(buf, pair{password, salt})
				if len(buf) == c.opts.ChunkSize {
					if !flush() {
						return
					}
				}
			}
		}
		flush()
	}()

	wg.Wait()

	if m, ok := match.Load().(Match); ok {
		return &m, done.Load(), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, done.Load(), err
	}
	return nil, done.Load(), nil
}

// evalBatch checks every candidate the batch describes and returns the first
// match in order, or nil. MD5 batches large enough to fill SIMD lanes take
// the md5-simd path.
func evalBatch(b batch, target string, targetRaw []byte, mode Mode) *Match {
	if b.algo == hashes.MD5 && targetRaw != nil && len(b.pairs) >= minSIMDBatch {
		return evalMD5Batch(b.pairs, targetRaw, mode)
	}
	var orders []string
	for _, p := range b.pairs {
		orders = mode.appendOrders(orders[:0], p.password, p.salt)
		for _, cand := range orders {
			if candidateMatches(b.algo, cand, target, targetRaw) {
				return &Match{Secret: cand, Algorithm: b.algo}
			}
		}
	}
	return nil
}

func evalMD5Batch(pairs []pair, targetRaw []byte, mode Mode) *Match {
	cands := make([][]byte, 0, len(pairs)*2)
	var orders []string
	for _, p := range pairs {
		orders = mode.appendOrders(orders[:0], p.password, p.salt)
		for _, cand := range orders {
			cands = append(cands, []byte(cand))
		}
	}
	if i := hashes.MatchMD5Batch(cands, targetRaw); i >= 0 {
		return &Match{Secret: string(cands[i]), Algorithm: hashes.MD5}
	}
	return nil
}

func candidateMatches(algo hashes.Algorithm, candidate, target string, targetRaw []byte) bool {
	if targetRaw != nil {
		if len(targetRaw) != algo.Size() {
			return false
		}
		return bytes.Equal(algo.Sum([]byte(candidate)), targetRaw)
	}
	return algo.Digest(candidate) == target
}
