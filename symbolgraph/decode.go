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

package symbolgraph

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	symjson "github.com/minio/symjson-go"
)

// Decode materializes one symbol-graph document. String interning is on:
// kind identifiers and access levels repeat per symbol and collapse to
// shared allocations.
func Decode(data []byte) (*SymbolGraph, error) {
	var g SymbolGraph
	if err := symjson.Unmarshal(data, &g, symjson.WithInternStrings(true)); err != nil {
		return nil, err
	}
	return &g, nil
}

// DecodeCompressed decodes a zstd-compressed symbol-graph stream. Graphs
// for large modules ship compressed; this inflates and decodes in one step.
func DecodeCompressed(r io.Reader) (*SymbolGraph, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("symbolgraph: opening zstd stream: %w", err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("symbolgraph: inflating: %w", err)
	}
	return Decode(data)
}

// DecodeJSON implements symjson.Unmarshaler.
func (g *SymbolGraph) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasMetadata, hasModule bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("metadata"):
			if err := g.Metadata.DecodeJSON(d); err != nil {
				return err
			}
			hasMetadata = true
		case d.MatchKey("module"):
			if err := g.Module.DecodeJSON(d); err != nil {
				return err
			}
			hasModule = true
		case d.MatchKey("symbols"):
			if g.Symbols, err = symjson.Array(d, symjson.Element[Symbol]); err != nil {
				return err
			}
		case d.MatchKey("relationships"):
			if g.Relationships, err = symjson.Array(d, symjson.Element[Relationship]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasMetadata {
		return d.KeyNotFound("metadata")
	}
	if !hasModule {
		return d.KeyNotFound("module")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler.
func (m *Metadata) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasVersion, hasGenerator bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("formatVersion"):
			if err := m.FormatVersion.DecodeJSON(d); err != nil {
				return err
			}
			hasVersion = true
		case d.MatchKey("generator"):
			if m.Generator, err = d.String(); err != nil {
				return err
			}
			hasGenerator = true
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasVersion {
		return d.KeyNotFound("formatVersion")
	}
	if !hasGenerator {
		return d.KeyNotFound("generator")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler. Missing components default to
// zero, matching how generators omit trailing .0 parts.
func (v *SemanticVersion) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("major"):
			if v.Major, err = d.Int(); err != nil {
				return err
			}
		case d.MatchKey("minor"):
			if v.Minor, err = d.Int(); err != nil {
				return err
			}
		case d.MatchKey("patch"):
			if v.Patch, err = d.Int(); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler.
func (m *Module) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasName bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("name"):
			if m.Name, err = d.String(); err != nil {
				return err
			}
			hasName = true
		case d.MatchKey("platform"):
			if err := m.Platform.DecodeJSON(d); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasName {
		return d.KeyNotFound("name")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler.
func (p *Platform) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("architecture"):
			if p.Architecture, err = d.String(); err != nil {
				return err
			}
		case d.MatchKey("vendor"):
			if p.Vendor, err = d.String(); err != nil {
				return err
			}
		case d.MatchKey("operatingSystem"):
			if p.OperatingSystem, err = symjson.Optional(d, symjson.Element[OperatingSystem]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler.
func (o *OperatingSystem) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasName bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("name"):
			if o.Name, err = d.String(); err != nil {
				return err
			}
			hasName = true
		case d.MatchKey("minimumVersion"):
			if o.MinimumVersion, err = symjson.Optional(d, symjson.Element[SemanticVersion]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasName {
		return d.KeyNotFound("name")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler. Mixins the model does not
// carry (swiftExtension, declarationFragments, spi, ...) are skipped.
func (s *Symbol) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasIdentifier, hasKind, hasPath, hasNames, hasAccess bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("identifier"):
			if err := s.Identifier.DecodeJSON(d); err != nil {
				return err
			}
			hasIdentifier = true
		case d.MatchKey("kind"):
			if err := s.Kind.DecodeJSON(d); err != nil {
				return err
			}
			hasKind = true
		case d.MatchKey("pathComponents"):
			if s.PathComponents, err = symjson.Array(d, (*symjson.Decoder).String); err != nil {
				return err
			}
			hasPath = true
		case d.MatchKey("names"):
			if err := s.Names.DecodeJSON(d); err != nil {
				return err
			}
			hasNames = true
		case d.MatchKey("docComment"):
			if s.DocComment, err = symjson.Optional(d, symjson.Element[LineList]); err != nil {
				return err
			}
		case d.MatchKey("accessLevel"):
			if s.AccessLevel, err = d.String(); err != nil {
				return err
			}
			hasAccess = true
		case d.MatchKey("availability"):
			if s.Availability, err = symjson.Array(d, symjson.Element[Availability]); err != nil {
				return err
			}
		case d.MatchKey("functionSignature"):
			if s.FunctionSignature, err = symjson.Optional(d, symjson.Element[FunctionSignature]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	switch {
	case !hasIdentifier:
		return d.KeyNotFound("identifier")
	case !hasKind:
		return d.KeyNotFound("kind")
	case !hasPath:
		return d.KeyNotFound("pathComponents")
	case !hasNames:
		return d.KeyNotFound("names")
	case !hasAccess:
		return d.KeyNotFound("accessLevel")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler.
func (id *Identifier) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasPrecise, hasLanguage bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("precise"):
			if id.Precise, err = d.String(); err != nil {
				return err
			}
			hasPrecise = true
		case d.MatchKey("interfaceLanguage"):
			if id.InterfaceLanguage, err = d.String(); err != nil {
				return err
			}
			hasLanguage = true
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasPrecise {
		return d.KeyNotFound("precise")
	}
	if !hasLanguage {
		return d.KeyNotFound("interfaceLanguage")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler.
func (k *Kind) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasIdentifier, hasDisplay bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("identifier"):
			if k.Identifier, err = d.String(); err != nil {
				return err
			}
			hasIdentifier = true
		case d.MatchKey("displayName"):
			if k.DisplayName, err = d.String(); err != nil {
				return err
			}
			hasDisplay = true
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasIdentifier {
		return d.KeyNotFound("identifier")
	}
	if !hasDisplay {
		return d.KeyNotFound("displayName")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler.
func (n *Names) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasTitle bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("title"):
			if n.Title, err = d.String(); err != nil {
				return err
			}
			hasTitle = true
		case d.MatchKey("navigator"):
			if n.Navigator, err = symjson.Array(d, symjson.Element[Fragment]); err != nil {
				return err
			}
		case d.MatchKey("subHeading"):
			if n.SubHeading, err = symjson.Array(d, symjson.Element[Fragment]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasTitle {
		return d.KeyNotFound("title")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler.
func (f *Fragment) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("kind"):
			if f.Kind, err = d.String(); err != nil {
				return err
			}
		case d.MatchKey("spelling"):
			if f.Spelling, err = d.String(); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler.
func (l *LineList) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("lines"):
			if l.Lines, err = symjson.Array(d, symjson.Element[Line]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler.
func (l *Line) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasText bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("text"):
			if l.Text, err = d.String(); err != nil {
				return err
			}
			hasText = true
		case d.MatchKey("range"):
			if l.Range, err = symjson.Optional(d, symjson.Element[SourceRange]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasText {
		return d.KeyNotFound("text")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler. The three-byte "end" key rides
// a trailing quote so it resolves in one 32-bit compare.
func (r *SourceRange) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("start"):
			if err := r.Start.DecodeJSON(d); err != nil {
				return err
			}
		case d.MatchKeyAt(`end"`, 0):
			if err := r.End.DecodeJSON(d); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler.
func (p *Position) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("line"):
			if p.Line, err = d.Int(); err != nil {
				return err
			}
		case d.MatchKey("character"):
			if p.Character, err = d.Int(); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler.
func (a *Availability) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("domain"):
			if a.Domain, err = d.String(); err != nil {
				return err
			}
		case d.MatchKey("introduced"):
			if a.Introduced, err = symjson.Optional(d, symjson.Element[SemanticVersion]); err != nil {
				return err
			}
		case d.MatchKey("deprecated"):
			if a.Deprecated, err = symjson.Optional(d, symjson.Element[SemanticVersion]); err != nil {
				return err
			}
		case d.MatchKey("message"):
			if a.Message, err = d.String(); err != nil {
				return err
			}
		case d.MatchKey("isUnconditionallyDeprecated"):
			if a.IsUnconditionallyDeprecated, err = d.Bool(); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler.
func (f *FunctionSignature) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case d.MatchKey("parameters"):
			if f.Parameters, err = symjson.Array(d, symjson.Element[FunctionParameter]); err != nil {
				return err
			}
		case d.MatchKey("returns"):
			if f.Returns, err = symjson.Array(d, symjson.Element[Fragment]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
}

// DecodeJSON implements symjson.Unmarshaler. Parameters recurse through
// Children for tuple and closure parameters.
func (p *FunctionParameter) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasName bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("name"):
			if p.Name, err = d.String(); err != nil {
				return err
			}
			hasName = true
		case d.MatchKey("children"):
			if p.Children, err = symjson.Array(d, symjson.Element[FunctionParameter]); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasName {
		return d.KeyNotFound("name")
	}
	return nil
}

// DecodeJSON implements symjson.Unmarshaler. "target" prefixes
// "targetFallback", so the six-byte keys fold both quotes into a single
// 64-bit compare at offset -1, which also makes the match exact.
func (r *Relationship) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasSource, hasTarget, hasKind bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKeyAt(`"source"`, -1):
			if r.Source, err = d.String(); err != nil {
				return err
			}
			hasSource = true
		case d.MatchKeyAt(`"target"`, -1):
			if r.Target, err = d.String(); err != nil {
				return err
			}
			hasTarget = true
		case d.MatchKey("targetFallback"):
			if r.TargetFallback, err = d.String(); err != nil {
				return err
			}
		case d.MatchKey("kind"):
			if r.Kind, err = d.String(); err != nil {
				return err
			}
			hasKind = true
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	switch {
	case !hasSource:
		return d.KeyNotFound("source")
	case !hasTarget:
		return d.KeyNotFound("target")
	case !hasKind:
		return d.KeyNotFound("kind")
	}
	return nil
}
