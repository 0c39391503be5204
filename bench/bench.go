// Package bench times bulk insert, search and remove on dict.Dict at
// growing sizes, optionally next to Go's builtin map.
package bench

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/pengdafu/chaindict/dict"
	"github.com/pengdafu/chaindict/util"
)

const (
	HashDJB2    = "djb2"
	HashSipHash = "siphash"
	HashMapHash = "maphash"
)

func knownHash(name string) bool {
	return name == HashDJB2 || name == HashSipHash || name == HashMapHash
}

type Result struct {
	N        int
	Capacity int64
	Baseline bool

	Insert time.Duration
	Search time.Duration
	Remove time.Duration

	Entries  int64
	Hits     int
	Misses   int
	Removed  int
	MaxChain int
}

type Runner struct {
	cfg   Config
	typ   *dict.Type
	rnd   *rand.Rand
	clock util.Clock
	keys  *keyPool
}

func NewRunner(ctx context.Context, cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &Runner{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(seed)),
	}

	switch cfg.Hash {
	case HashSipHash:
		key := make([]byte, 16)
		r.rnd.Read(key)
		r.typ = dict.SipHashType(key)
	case HashMapHash:
		r.typ = dict.MapHashType()
	default:
		r.typ = dict.DJB2Type
	}

	if cfg.Clock == ClockWall {
		r.clock = util.WallClock()
	} else {
		clock, err := util.CPUClock()
		if err != nil {
			log.Printf("cpu clock unavailable, using wall clock: %v", err)
		}
		r.clock = clock
	}

	r.keys = newKeyPool(ctx, cfg.KeyLength)
	return r, nil
}

func (r *Runner) Close(ctx context.Context) {
	r.keys.close(ctx)
}

// Capacity is the slot count that gives n entries the wanted load factor.
func Capacity(n int, loadFactor float64) int64 {
	return int64(float64(n)/loadFactor) + 1
}

// Run executes one step per size from Step to MaxElements and hands each
// result to fn. Cancellation is checked between steps.
func (r *Runner) Run(ctx context.Context, fn func(Result) error) error {
	for n := r.cfg.Step; n <= r.cfg.MaxElements; n += r.cfg.Step {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.RunStep(ctx, n)
		if err != nil {
			return err
		}
		if err := fn(res); err != nil {
			return err
		}
		if !r.cfg.Baseline {
			continue
		}
		res, err = r.RunBaselineStep(ctx, n)
		if err != nil {
			return err
		}
		if err := fn(res); err != nil {
			return err
		}
	}
	return nil
}

// Populate creates a dictionary sized for n entries and fills it with n
// random keys. The caller owns the returned Dict.
func (r *Runner) Populate(ctx context.Context, n int) (*dict.Dict, []string, error) {
	d, err := r.newDict(n)
	if err != nil {
		return nil, nil, err
	}
	keys, err := r.fill(ctx, d, n)
	if err != nil {
		d.Release()
		return nil, nil, err
	}
	return d, keys, nil
}

func (r *Runner) RunStep(ctx context.Context, n int) (Result, error) {
	res := Result{N: n}
	d, err := r.newDict(n)
	if err != nil {
		return res, err
	}
	defer d.Release()
	res.Capacity = d.Cap()

	start := r.clock()
	keys, err := r.fill(ctx, d, n)
	if err != nil {
		return res, err
	}
	res.Insert = r.clock() - start
	res.Entries = d.Len()
	res.MaxChain = d.Stats().MaxChain

	buf, err := r.keys.borrow(ctx)
	if err != nil {
		return res, fmt.Errorf("borrow key buffer: %w", err)
	}
	defer r.giveBack(ctx, buf)

	hits, misses := r.lookups(n)
	start = r.clock()
	for i := 0; i < hits; i++ {
		res.count(d.Search(keys[i]))
	}
	for i := 0; i < misses; i++ {
		util.FillAlnum(r.rnd, buf.b)
		res.count(d.SearchBytes(buf.b))
	}
	res.Search = r.clock() - start

	start = r.clock()
	for i := n - 1; i >= 0; i-- {
		if d.Remove(keys[i]) {
			res.Removed++
		}
	}
	res.Remove = r.clock() - start
	return res, nil
}

// RunBaselineStep runs the RunStep workload against a builtin map.
func (r *Runner) RunBaselineStep(ctx context.Context, n int) (Result, error) {
	res := Result{N: n, Baseline: true}
	buf, err := r.keys.borrow(ctx)
	if err != nil {
		return res, fmt.Errorf("borrow key buffer: %w", err)
	}
	defer r.giveBack(ctx, buf)

	keys := make([]string, n)
	vals := make([]int64, n)
	for i := range keys {
		util.FillAlnum(r.rnd, buf.b)
		keys[i] = string(buf.b)
		vals[i] = int64(r.rnd.Intn(r.cfg.MaxValue))
	}

	m := make(map[string]int64)
	start := r.clock()
	for i, key := range keys {
		m[key] = vals[i]
	}
	res.Insert = r.clock() - start
	res.Entries = int64(len(m))

	hits, misses := r.lookups(n)
	start = r.clock()
	for i := 0; i < hits; i++ {
		_, ok := m[keys[i]]
		res.count(0, ok)
	}
	for i := 0; i < misses; i++ {
		util.FillAlnum(r.rnd, buf.b)
		_, ok := m[string(buf.b)]
		res.count(0, ok)
	}
	res.Search = r.clock() - start

	start = r.clock()
	for i := n - 1; i >= 0; i-- {
		if _, ok := m[keys[i]]; ok {
			delete(m, keys[i])
			res.Removed++
		}
	}
	res.Remove = r.clock() - start
	return res, nil
}

func (r *Runner) newDict(n int) (*dict.Dict, error) {
	capacity := Capacity(n, r.cfg.LoadFactor)
	d, err := dict.Create(r.typ, capacity)
	if err != nil {
		return nil, fmt.Errorf("create dictionary with %d slots: %w", capacity, err)
	}
	d.LimitEntries(r.cfg.EntryLimit)
	return d, nil
}

// fill inserts n random keys through one reused buffer and returns
// copies of the keys in insertion order.
func (r *Runner) fill(ctx context.Context, d *dict.Dict, n int) ([]string, error) {
	buf, err := r.keys.borrow(ctx)
	if err != nil {
		return nil, fmt.Errorf("borrow key buffer: %w", err)
	}
	defer r.giveBack(ctx, buf)

	keys := make([]string, n)
	for i := 0; i < n; i++ {
		util.FillAlnum(r.rnd, buf.b)
		keys[i] = string(buf.b)
		if err := d.InsertBytes(buf.b, int64(r.rnd.Intn(r.cfg.MaxValue))); err != nil {
			return nil, fmt.Errorf("insert key %d of %d: %w", i+1, n, err)
		}
	}
	return keys, nil
}

// lookups splits n searches into known keys and fresh random keys.
func (r *Runner) lookups(n int) (hits, misses int) {
	hits = int(float64(n) * r.cfg.HitRatio)
	if hits > n {
		hits = n
	}
	return hits, n - hits
}

func (res *Result) count(_ int64, found bool) {
	if found {
		res.Hits++
	} else {
		res.Misses++
	}
}

func (r *Runner) giveBack(ctx context.Context, buf *keyBuffer) {
	if err := r.keys.giveBack(ctx, buf); err != nil {
		log.Println("return key buffer:", err)
	}
}
