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

package board

import (
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// The board is infinite, so there is no precomputed per-square key
// table the way a bounded 8x8 engine would build one. Instead a
// coordinate is hashed at runtime and combined with a per-(kind,color)
// constant generated once at init time by the xorshift64star PRNG
// (random.go), the same idiom the source uses to seed its bitboard
// magic and zobrist tables.
var pieceKeys [ColorLength][PkLength]uint64

const (
	sideKey          uint64 = 0x9E3779B97F4A7C15
	castlingKeyMixer uint64 = 0xDEADBEEF12345678
	enPassantMixer   uint64 = 0xCAFEBABE87654321
	pawnKeyMixer     uint64 = 0xABCDEF0123456789
	materialMixer    uint64 = 0xFEDCBA9876543210

	// coordNormBound and coordNormBuckets implement the "kept verbatim
	// within |c|<=150, bucketed by 8 beyond that" normalization: this
	// preserves distinguishability for local activity while bounding
	// the range of hash inputs far from the action.
	coordNormBound   int64 = 150
	coordNormBuckets int64 = 8
)

func init() {
	r := newRandom(0x123456789ABCDEF0)
	for c := Color(0); c < Color(ColorLength); c++ {
		for k := PieceKind(0); k < PkLength; k++ {
			pieceKeys[c][k] = r.rand64()
		}
	}
}

func normalizeCoord(c int64) int64 {
	if c >= -coordNormBound && c <= coordNormBound {
		return c
	}
	sign := int64(1)
	if c < 0 {
		sign = -1
	}
	delta := (c - sign*coordNormBound) % coordNormBuckets
	return sign*coordNormBound + delta
}

// hashCoordinate mixes a normalized (x,y) pair into a 64-bit value via a
// two-multiply-xor mix.
func hashCoordinate(x, y int64) uint64 {
	nx := uint64(normalizeCoord(x))
	ny := uint64(normalizeCoord(y))
	h := nx*0x517cc1b727220a95 ^ ny*0x9e3779b97f4a7c15
	return h ^ (h >> 32)
}

func pieceKey(p Piece, c Coordinate) uint64 {
	return hashCoordinate(c.X, c.Y) ^ pieceKeys[p.Color][p.Kind]
}

// specialRightKey returns the key mixed in while a coordinate still
// carries its first-move special right (castling or pawn double-move).
func specialRightKey(c Coordinate) uint64 {
	return hashCoordinate(c.X, c.Y) ^ castlingKeyMixer
}

// enPassantKey returns the key mixed in while c is the active en
// passant capture square.
func enPassantKey(c Coordinate) uint64 {
	return hashCoordinate(c.X, c.Y) ^ enPassantMixer
}

// sideToMoveKey returns the key XORed in when it is c's turn, used to
// flip the hash on every move.
func sideToMoveKey(c Color) uint64 {
	if c == Black {
		return sideKey
	}
	return 0
}

// pawnStructureKey contributes to the pawn-only hash (GameState.PawnHash)
// that keys the evaluator's pawn cache.
func pawnStructureKey(color Color, c Coordinate) uint64 {
	return hashCoordinate(c.X, c.Y) ^ pawnKeyMixer ^ (uint64(color) * sideKey)
}

// materialKey contributes to a material-configuration hash, independent
// of square, usable by a future correction-history table.
func materialKey(k PieceKind, color Color) uint64 {
	return materialMixer*(uint64(k)+1) ^ (uint64(color) * 0x517CC1B727220A95)
}
