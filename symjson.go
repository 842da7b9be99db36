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

// Package symjson is a streaming, schema-directed JSON decoder specialized
// for documentation symbol-graph files: large, deeply nested documents
// whose object keys are known at compile time and pure ASCII.
//
// Schema code consumes tokens in document order through the Decoder rather
// than buffering a generic tree. Known keys resolve through wide unaligned
// integer compares, string terminators are found eight bytes at a time with
// SWAR arithmetic, and unknown keys are skipped without surfacing. Errors
// carry the object/array path to the failure.
package symjson

// Unmarshaler is the contract between the decoder and schema code: a type
// constructs itself from the decoder, reading tokens in input order.
//
// A typical implementation descends into its object, loops NextKey,
// dispatches on MatchKey, decodes or Ignores each value, then verifies its
// required keys:
//
//	func (r *Record) DecodeJSON(d *symjson.Decoder) error {
//		if err := d.DescendObject(); err != nil {
//			return err
//		}
//		var seenName bool
//		for {
//			ok, err := d.NextKey()
//			if err != nil {
//				return err
//			}
//			if !ok {
//				break
//			}
//			switch {
//			case d.MatchKey("name"):
//				if r.Name, err = d.String(); err != nil {
//					return err
//				}
//				seenName = true
//			default:
//				if err := d.Ignore(); err != nil {
//					return err
//				}
//			}
//		}
//		if !seenName {
//			return d.KeyNotFound("name")
//		}
//		return nil
//	}
type Unmarshaler interface {
	DecodeJSON(d *Decoder) error
}

// Unmarshal decodes one JSON document into v.
func Unmarshal(data []byte, v Unmarshaler, opts ...Option) error {
	d := NewDecoder(data, opts...)
	return d.finish(v.DecodeJSON(d))
}

// Decode is the generic form of Unmarshal for types whose pointer
// implements Unmarshaler.
func Decode[T any, P interface {
	*T
	Unmarshaler
}](data []byte, opts ...Option) (T, error) {
	var v T
	err := Unmarshal(data, P(&v), opts...)
	return v, err
}

// finish restores the decoder to its pre-call depth and makes sure no
// private sentinel escapes the public boundary.
func (d *Decoder) finish(err error) error {
	d.path.depth = 0
	d.fences = d.fences[:0]
	if err == errUnexpectedChar || err == errUnexpectedEOF {
		return &DataCorruptedError{}
	}
	return err
}
