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

package evaluator

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/frankkopp/fairyengine/internal/config"
	myLogging "github.com/frankkopp/fairyengine/internal/logging"
)

const (
	// mb is the byte size used to convert the configured cache size.
	mb = 1024 * 1024

	// maxPawnCacheSizeInMB is the hard cap on pawn cache size regardless
	// of what the configuration requests.
	maxPawnCacheSizeInMB = 1_024
)

// pawnCache is a fixed-size, always-replace hash table mapping a
// position's pawn structure hash (board.GameState.PawnHash) to its
// already-evaluated pawn structure Score. Pawn structure changes far
// less often than the rest of the position during a search, so most
// probes during a single search hit the same handful of entries.
type pawnCache struct {
	log *logging.Logger

	data               []pawnCacheEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	hashKeyMask        uint64

	entries uint64
	hits    uint64
	misses  uint64
	replace uint64
}

type pawnCacheEntry struct {
	pawnKey uint64
	score   Score
}

func newPawnCache() *pawnCache {
	pc := &pawnCache{
		log: myLogging.GetLog("evaluator"),
	}
	pc.resize(config.Settings.Eval.PawnCacheSize)
	return pc
}

func (pc *pawnCache) resize(sizeInMByte int) {
	if sizeInMByte > maxPawnCacheSizeInMB {
		pc.log.Warningf("requested pawn cache size %d MB reduced to max %d MB", sizeInMByte, maxPawnCacheSizeInMB)
		sizeInMByte = maxPawnCacheSizeInMB
	}

	entrySize := uint64(unsafe.Sizeof(pawnCacheEntry{}))
	pc.sizeInByte = uint64(sizeInMByte) * mb
	if pc.sizeInByte == 0 || entrySize == 0 {
		pc.maxNumberOfEntries = 0
	} else {
		pc.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(pc.sizeInByte/entrySize))))
	}
	pc.hashKeyMask = pc.maxNumberOfEntries - 1
	pc.sizeInByte = pc.maxNumberOfEntries * entrySize
	pc.data = make([]pawnCacheEntry, pc.maxNumberOfEntries)

	pc.log.Info(out.Sprintf("pawn cache sized to %d MB, %d entries", pc.sizeInByte/mb, pc.maxNumberOfEntries))
}

// getEntry returns the cached score for key, or nil on a miss or an
// empty table.
func (pc *pawnCache) getEntry(key uint64) *pawnCacheEntry {
	if pc.maxNumberOfEntries == 0 {
		return nil
	}
	e := &pc.data[pc.hash(key)]
	if e.pawnKey == key {
		pc.hits++
		return e
	}
	pc.misses++
	return nil
}

// put stores score under key, always replacing whatever currently
// occupies that slot.
func (pc *pawnCache) put(key uint64, score *Score) {
	if pc.maxNumberOfEntries == 0 {
		return
	}
	e := &pc.data[pc.hash(key)]
	if e.pawnKey == 0 {
		pc.entries++
	} else if e.pawnKey != key {
		pc.replace++
	}
	e.pawnKey = key
	e.score = *score
}

// clear empties the cache and resets its statistics.
func (pc *pawnCache) clear() {
	pc.data = make([]pawnCacheEntry, pc.maxNumberOfEntries)
	pc.entries = 0
	pc.hits = 0
	pc.misses = 0
	pc.replace = 0
}

// len returns the number of occupied entries.
func (pc *pawnCache) len() uint64 {
	return pc.entries
}

func (pc *pawnCache) hash(key uint64) uint64 {
	return key & pc.hashKeyMask
}
