//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable implements a bucketed, 3-way
// set-associative transposition table. The source kept one flat array
// sized to an exact memory budget and replaced whichever entry a hash
// collided with; that policy degrades badly once many more distinct
// positions can map to the same slot, which happens more often here
// since the unbounded board's coordinate-hash mixing (internal/board's
// zobrist.go) buckets far-flung coordinates together by design. Giving
// each index three candidate slots and a depth/age replacement policy
// keeps a useful entry from being evicted by a single shallow probe.
//
// TtTable is not thread safe; callers synchronize externally if shared
// across goroutines. The root-parallel perft fan-out does not use a
// shared table, each worker owning its own GameState copy only.
package transpositiontable

import (
	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/fairyengine/internal/logging"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

var log *logging.Logger

// waysPerBucket is the set-associativity: each hash index owns this
// many candidate slots, tried in order on both probe and store.
const waysPerBucket = 3

// bucket is one hash index's set of candidate entries.
type bucket [waysPerBucket]TtEntry

// TtTable is a bucketed transposition table sized in mebibytes.
type TtTable struct {
	buckets    []bucket
	mask       uint64
	generation int8
	stats      Stats
}

// Stats counts probe outcomes for diagnostic reporting.
type Stats struct {
	Hits, Misses, Puts, Collisions, Updates int64
}

// entrySizeBytes approximates a TtEntry's memory footprint; exactness
// does not matter here, only landing on a reasonable order of magnitude
// for the number of buckets a given megabyte budget buys.
const entrySizeBytes = 48

// NewTtTable allocates a table sized to approximately sizeInMb
// mebibytes, rounded down to a power of two number of buckets so index
// computation is a mask rather than a modulo.
func NewTtTable(sizeInMb int) *TtTable {
	if log == nil {
		log = myLogging.GetLog("search")
	}
	bucketSize := uint64(waysPerBucket * entrySizeBytes)
	numBuckets := (uint64(sizeInMb) * 1024 * 1024) / bucketSize
	numBuckets = nextPowerOfTwoFloor(numBuckets)
	if numBuckets == 0 {
		numBuckets = 1
	}
	tt := &TtTable{
		buckets: make([]bucket, numBuckets),
		mask:    numBuckets - 1,
	}
	log.Infof("transposition table allocated: %d buckets (%d ways each)", numBuckets, waysPerBucket)
	return tt
}

func nextPowerOfTwoFloor(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	p := uint64(1)
	for p*2 <= n {
		p *= 2
	}
	return p
}

// Clear resets every entry and the replacement generation counter.
func (tt *TtTable) Clear() {
	for i := range tt.buckets {
		tt.buckets[i] = bucket{}
	}
	tt.generation = 0
	tt.stats = Stats{}
}

// NewSearch bumps the replacement generation, making prior-generation
// entries preferred eviction targets without clearing the table.
func (tt *TtTable) NewSearch() {
	if tt.generation < 127 {
		tt.generation++
	}
}

func (tt *TtTable) index(key uint64) uint64 {
	return key & tt.mask
}

// Probe looks up key and returns the matching entry and whether one was
// found. A bucket may hold entries from hash collisions at the masked
// bits; the stored key is compared in full to rule those out.
func (tt *TtTable) Probe(key uint64) (TtEntry, bool) {
	b := &tt.buckets[tt.index(key)]
	for i := range b {
		if !b[i].isEmpty() && b[i].key == key {
			tt.stats.Hits++
			return b[i], true
		}
	}
	tt.stats.Misses++
	return TtEntry{}, false
}

// Put stores a search result, replacing the shallowest or oldest entry
// in the bucket when all three ways are occupied by a different
// position. An existing entry for the same key is updated in place
// whenever the new data is at least as deep or is an EXACT score.
func (tt *TtTable) Put(key uint64, move Move, depth int8, value, eval Value, vtype ValueType) {
	b := &tt.buckets[tt.index(key)]
	tt.stats.Puts++

	for i := range b {
		if b[i].isEmpty() {
			if i > 0 {
				tt.stats.Collisions++ // the bucket already holds another position
			}
			b[i] = TtEntry{key: key, move: move, depth: depth, value: value, eval: eval, vtype: vtype, age: tt.generation}
			return
		}
		if b[i].key == key {
			if depth >= b[i].depth || vtype == EXACT {
				tt.stats.Updates++
				b[i] = TtEntry{key: key, move: move, depth: depth, value: value, eval: eval, vtype: vtype, age: tt.generation}
			}
			return
		}
	}

	tt.stats.Collisions++
	victim := 0
	for i := 1; i < waysPerBucket; i++ {
		if replacementScore(b[i], tt.generation) < replacementScore(b[victim], tt.generation) {
			victim = i
		}
	}
	b[victim] = TtEntry{key: key, move: move, depth: depth, value: value, eval: eval, vtype: vtype, age: tt.generation}
}

// replacementScore favors keeping deep, current-generation, exactly
// bounded entries; lower is a better eviction candidate. The +2 bonus
// for an EXACT entry balances two plies of depth or one generation of
// age, since an exact score is worth more to future probes than a bound.
func replacementScore(e TtEntry, currentGen int8) int {
	ageGap := int(currentGen - e.age)
	score := int(e.depth) - 2*ageGap
	if e.vtype == EXACT {
		score += 2
	}
	return score
}

// GetStats returns a snapshot of probe/store counters.
func (tt *TtTable) GetStats() Stats {
	return tt.stats
}

// Len returns the number of addressable buckets (not occupied entries).
func (tt *TtTable) Len() int {
	return len(tt.buckets)
}
