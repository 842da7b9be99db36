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

import "encoding/binary"

// leBytes packs n bytes of s starting at i into a little-endian word.
func leBytes(s string, i, n int) uint64 {
	var v uint64
	for j := 0; j < n; j++ {
		v |= uint64(s[i+j]) << (8 * j)
	}
	return v
}

// lowMask keeps the low n bytes of a word.
func lowMask(n int) uint64 {
	return ^uint64(0) >> (64 - 8*n)
}

// keyEqual reports whether the len(lit) bytes at pos+off equal lit, using
// the widest unaligned compares the length admits. Lengths 3, 5, 6 and 7
// load a full word and mask away the lanes past the key; the buffer padding
// keeps those loads in bounds. Lengths above 12 compare in 8-byte steps
// with the final compare overlapping the previous one so it always reads a
// full word.
func (d *Decoder) keyEqual(lit string, off int) bool {
	base := d.pos + off
	n := len(lit)
	if base < 0 || base+n+7 > len(d.buf) {
		return d.keyEqualSlow(lit, base)
	}
	b := d.buf[base:]
	switch n {
	case 0:
		return true
	case 1:
		return b[0] == lit[0]
	case 2:
		return binary.LittleEndian.Uint16(b) == uint16(leBytes(lit, 0, 2))
	case 3:
		return uint64(binary.LittleEndian.Uint32(b))&lowMask(3) == leBytes(lit, 0, 3)
	case 4:
		return binary.LittleEndian.Uint32(b) == uint32(leBytes(lit, 0, 4))
	case 5, 6, 7:
		return binary.LittleEndian.Uint64(b)&lowMask(n) == leBytes(lit, 0, n)
	case 8:
		return binary.LittleEndian.Uint64(b) == leBytes(lit, 0, 8)
	case 9:
		return binary.LittleEndian.Uint64(b) == leBytes(lit, 0, 8) &&
			b[8] == lit[8]
	case 10:
		return binary.LittleEndian.Uint64(b) == leBytes(lit, 0, 8) &&
			binary.LittleEndian.Uint16(b[8:]) == uint16(leBytes(lit, 8, 2))
	case 11:
		// The two loads overlap by one byte at offset 7.
		return binary.LittleEndian.Uint64(b) == leBytes(lit, 0, 8) &&
			binary.LittleEndian.Uint32(b[7:]) == uint32(leBytes(lit, 7, 4))
	case 12:
		return binary.LittleEndian.Uint64(b) == leBytes(lit, 0, 8) &&
			binary.LittleEndian.Uint32(b[8:]) == uint32(leBytes(lit, 8, 4))
	default:
		i := 0
		for ; n-i >= 8; i += 8 {
			if binary.LittleEndian.Uint64(b[i:]) != leBytes(lit, i, 8) {
				return false
			}
		}
		if i < n {
			if binary.LittleEndian.Uint64(b[n-8:]) != leBytes(lit, n-8, 8) {
				return false
			}
		}
		return true
	}
}

// keyEqualSlow is the byte-wise fallback for compares too close to the end
// of the allocation for wide loads.
func (d *Decoder) keyEqualSlow(lit string, base int) bool {
	if base < 0 || base+len(lit) > len(d.buf) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if d.buf[base+i] != lit[i] {
			return false
		}
	}
	return true
}
