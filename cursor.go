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

import (
	"encoding/binary"
	"unsafe"
)

// padBytes is the number of zero bytes kept past the logical end of the
// input. The wide key compares and the 8-byte string scanner may read up to
// 7 bytes beyond the position they inspect; the padding keeps every such
// load inside the allocation, so the inner loops carry no per-load bounds
// checks. A single check at the public boundary re-establishes pos <= end.
const padBytes = 8

// The cursor is the pair (pos, end) over the padded buffer. None of the
// loads below bounds-check; the padding and the outer-loop guards make the
// checks redundant.

func (d *Decoder) loadU8(off int) byte {
	return d.buf[d.pos+off]
}

func (d *Decoder) loadU16(off int) uint16 {
	return binary.LittleEndian.Uint16(d.buf[d.pos+off:])
}

func (d *Decoder) loadU32(off int) uint32 {
	return binary.LittleEndian.Uint32(d.buf[d.pos+off:])
}

func (d *Decoder) loadU64(off int) uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.pos+off:])
}

func (d *Decoder) advance(n int) {
	d.pos += n
}

// peek returns the current byte. At or past end it reads padding, which is
// always zero and therefore never a meaningful JSON byte.
func (d *Decoder) peek() byte {
	return d.buf[d.pos]
}

// boundsCheck re-establishes the pos <= end invariant after an advance that
// may have overshot.
func (d *Decoder) boundsCheck() error {
	if d.pos > d.end {
		return errUnexpectedEOF
	}
	return nil
}

// b2s views b as a string without copying. Callers must not let the result
// escape to code that could observe later buffer mutation; the decoder's
// buffer is write-once, so views into it are stable.
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
