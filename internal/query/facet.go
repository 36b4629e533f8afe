package query

import (
	"fmt"
	"strings"
)

// Facet is one of the whitelisted distinct-value lookups.
type Facet int

const (
	FacetPlatformName Facet = iota + 1
	FacetReleaseYear
	FacetPublisherName
	FacetGenreName
	FacetRegionName
)

// FacetColumn locates the column a facet reads.
type FacetColumn struct {
	Table   string
	Column  string
	Numeric bool
}

var facets = []struct {
	facet  Facet
	name   string
	column FacetColumn
}{
	{FacetPlatformName, "platform_name", FacetColumn{Table: "platform", Column: "platform_name"}},
	{FacetReleaseYear, "release_year", FacetColumn{Table: "game_platform", Column: "release_year", Numeric: true}},
	{FacetPublisherName, "publisher_name", FacetColumn{Table: "publisher", Column: "publisher_name"}},
	{FacetGenreName, "genre_name", FacetColumn{Table: "genre", Column: "genre_name"}},
	{FacetRegionName, "region_name", FacetColumn{Table: "region", Column: "region_name"}},
}

// FacetNames returns the accepted field names in a fixed order.
func FacetNames() []string {
	names := make([]string, len(facets))
	for i, f := range facets {
		names[i] = f.name
	}
	return names
}

// ParseFacet maps a field name to its facet. Anything outside the allow-list
// is an InvalidFieldError.
func ParseFacet(name string) (Facet, error) {
	for _, f := range facets {
		if f.name == name {
			return f.facet, nil
		}
	}
	return 0, &InvalidFieldError{Field: name, Valid: FacetNames()}
}

func (f Facet) String() string {
	for _, entry := range facets {
		if entry.facet == f {
			return entry.name
		}
	}
	return fmt.Sprintf("Facet(%d)", int(f))
}

// Column returns where the facet's values live. ok is false for values
// outside the enumeration.
func (f Facet) Column() (col FacetColumn, ok bool) {
	for _, entry := range facets {
		if entry.facet == f {
			return entry.column, true
		}
	}
	return FacetColumn{}, false
}

// InvalidFieldError reports an unknown facet field name together with the
// allowed names.
type InvalidFieldError struct {
	Field string
	Valid []string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q, valid options: %s", e.Field, strings.Join(e.Valid, ", "))
}

func (e *InvalidFieldError) Unwrap() error { return ErrInvalidInput }
