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

// Package symbolgraph materializes documentation symbol-graph files through
// the symjson decoder. A symbol graph describes one module: the symbols it
// vends and the relationships between them. Files routinely run to tens of
// megabytes, which is what the schema-directed decode is for.
package symbolgraph

import (
	"strings"

	"golang.org/x/exp/slices"
)

// SymbolGraph is one decoded symbol-graph document.
type SymbolGraph struct {
	Metadata      Metadata
	Module        Module
	Symbols       []Symbol
	Relationships []Relationship
}

// Metadata identifies the tool and format that produced the graph.
type Metadata struct {
	FormatVersion SemanticVersion
	Generator     string
}

// SemanticVersion is a major.minor.patch triple.
type SemanticVersion struct {
	Major int64
	Minor int64
	Patch int64
}

// Module names the module the graph documents and the platform it was
// built for.
type Module struct {
	Name     string
	Platform Platform
}

// Platform is the build target of the module.
type Platform struct {
	Architecture    string
	Vendor          string
	OperatingSystem *OperatingSystem
}

// OperatingSystem is the OS component of a platform triple.
type OperatingSystem struct {
	Name           string
	MinimumVersion *SemanticVersion
}

// Symbol is one documented declaration.
type Symbol struct {
	Identifier        Identifier
	Kind              Kind
	PathComponents    []string
	Names             Names
	DocComment        *LineList
	AccessLevel       string
	Availability      []Availability
	FunctionSignature *FunctionSignature
}

// Identifier uniquely names a symbol within its interface language.
type Identifier struct {
	Precise           string
	InterfaceLanguage string
}

// Kind classifies a symbol (function, struct, property, ...).
type Kind struct {
	Identifier  string
	DisplayName string
}

// Names holds the titles a symbol is presented under.
type Names struct {
	Title      string
	Navigator  []Fragment
	SubHeading []Fragment
}

// Fragment is one syntax-colored piece of a rendered declaration.
type Fragment struct {
	Kind     string
	Spelling string
}

// LineList is a documentation comment, one entry per source line.
type LineList struct {
	Lines []Line
}

// Line is one doc-comment line with its optional source location.
type Line struct {
	Text  string
	Range *SourceRange
}

// SourceRange is a half-open start/end span in a source file.
type SourceRange struct {
	Start Position
	End   Position
}

// Position is a zero-based line/character location.
type Position struct {
	Line      int64
	Character int64
}

// Availability records one platform-availability constraint of a symbol.
type Availability struct {
	Domain                      string
	Introduced                  *SemanticVersion
	Deprecated                  *SemanticVersion
	Message                     string
	IsUnconditionallyDeprecated bool
}

// FunctionSignature describes a callable symbol's parameters and return.
type FunctionSignature struct {
	Parameters []FunctionParameter
	Returns    []Fragment
}

// FunctionParameter is one parameter; tuple and closure parameters nest
// through Children.
type FunctionParameter struct {
	Name     string
	Children []FunctionParameter
}

// Normalize sorts symbols and relationships into a deterministic order so
// graphs decoded from differently-ordered inputs compare equal.
func (g *SymbolGraph) Normalize() {
	slices.SortFunc(g.Symbols, func(a, b Symbol) int {
		return strings.Compare(a.Identifier.Precise, b.Identifier.Precise)
	})
	slices.SortFunc(g.Relationships, func(a, b Relationship) int {
		if c := strings.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		if c := strings.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return strings.Compare(a.Target, b.Target)
	})
}

// Relationship is one directed edge between two symbols.
type Relationship struct {
	Source         string
	Target         string
	Kind           string
	TargetFallback string
}
