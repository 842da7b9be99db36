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
	"errors"
	"fmt"
)

// The scanner unwinds on two private sentinels. Public entry points map
// them to the exported error types below; the sentinels never escape.
var (
	errUnexpectedChar = errors.New("unexpected character")
	errUnexpectedEOF  = errors.New("unexpected end of input")
)

// KeyNotFoundError reports a required object key missing from the input.
type KeyNotFoundError struct {
	Key  string
	Path Path
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("symjson: required key %q not found at %s", e.Key, e.Path)
}

// TypeMismatchError reports a value of the wrong JSON type. Found is a
// human description of what the input held instead.
type TypeMismatchError struct {
	Expected string
	Found    string
	Path     Path
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("symjson: expected %s but found %s at %s", e.Expected, e.Found, e.Path)
}

// ValueNotFoundError reports a literal null where a concrete value was
// required. Kept distinct from TypeMismatchError so callers can treat
// null-for-required separately from wrong-type.
type ValueNotFoundError struct {
	Expected string
	Path     Path
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("symjson: expected %s but found null at %s", e.Expected, e.Path)
}

// DataCorruptedError reports any structural violation: malformed JSON,
// integer overflow, an unrecognized escape, exceeded nesting depth, or a
// truncated document.
type DataCorruptedError struct {
	Path Path
}

func (e *DataCorruptedError) Error() string {
	return fmt.Sprintf("symjson: data corrupted at %s", e.Path)
}

// foundDescription classifies the byte at the failure position for
// TypeMismatchError diagnostics.
func foundDescription(c byte) string {
	switch {
	case c == '"':
		return "a string"
	case c == 't' || c == 'f':
		return "bool"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	case c == '{':
		return "a dictionary"
	case c == '[':
		return "an array"
	default:
		return "invalid JSON"
	}
}

// corrupted builds a DataCorruptedError located at the current path.
func (d *Decoder) corrupted() error {
	return &DataCorruptedError{Path: d.renderPath()}
}

// valueErr maps a scanner failure at a typed boundary to the public
// taxonomy: EOF is corruption, null is ValueNotFound, anything else is a
// mismatch described by the byte under the cursor.
func (d *Decoder) valueErr(expected string, err error) error {
	if err == errUnexpectedEOF || d.pos >= d.end {
		return d.corrupted()
	}
	if d.loadU32(0) == atomNull {
		return &ValueNotFoundError{Expected: expected, Path: d.renderPath()}
	}
	return &TypeMismatchError{Expected: expected, Found: foundDescription(d.peek()), Path: d.renderPath()}
}

// KeyNotFound constructs the error a schema type returns when a required
// key never appeared in its object.
func (d *Decoder) KeyNotFound(key string) error {
	return &KeyNotFoundError{Key: key, Path: d.renderPath()}
}
