/*
 * MinIO Cloud Storage, (C) 2023 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package symjson

import "math/bits"

// SWAR constants. lowBits has the low bit of every byte set, highBits the
// high bit of every byte.
const (
	lowBits  = 0x0101010101010101
	highBits = 0x8080808080808080
)

// broadcast replicates b into all 8 byte lanes of a word.
func broadcast(b byte) uint64 {
	return lowBits * uint64(b)
}

// matcher answers byte-equality queries over one 8-byte block. Only bit 7 of
// a result byte can be set. The lowest set bit marks the first lane equal to
// the pattern byte, and the mask is zero exactly when no lane matches; lanes
// above the first match may also be flagged by the borrow, so only the
// lowest flag is exact, which is all the queries below use.
type matcher struct {
	mask uint64
}

// matchByte compares all 8 bytes of block against pattern, which must be a
// broadcast byte. Matching lanes become zero under XOR; subtracting 1 from
// each lane then borrows into bit 7 for those lanes, with the &^x term
// suppressing the false carry from lanes whose own high bit was set. Up to
// and including the first matching lane the result is exact; the borrow out
// of a zero lane can also set bit 7 in the lane above it.
func matchByte(block, pattern uint64) matcher {
	x := block ^ pattern
	y := x - lowBits
	return matcher{mask: y &^ x & highBits}
}

// hasMatches reports whether any lane matched.
func (m matcher) hasMatches() bool {
	return m.mask != 0
}

// leadingNonMatches returns the number of lanes before the first match.
// Only meaningful when hasMatches is true.
func (m matcher) leadingNonMatches() int {
	return bits.TrailingZeros64(m.mask) / 8
}

// isBefore reports whether this matcher's first match occurs strictly before
// other's first match. Vacuously true when other has no matches.
func (m matcher) isBefore(other matcher) bool {
	return other.mask == 0 || bits.TrailingZeros64(m.mask) < bits.TrailingZeros64(other.mask)
}
