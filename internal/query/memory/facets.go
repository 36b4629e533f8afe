package memory

import (
	"context"
	"slices"

	"vgsales/backend/internal/query"
)

// FacetValues implements query.Engine. Years are ordered numerically, names
// by byte order.
func (e *Engine) FacetValues(ctx context.Context, facet query.Facet) ([]string, error) {
	col, ok := facet.Column()
	if !ok {
		_, err := query.ParseFacet(facet.String())
		return nil, err
	}
	return observe(ctx, query.ShapeFacet, func() ([]string, error) {
		if err := e.require(col.Table); err != nil {
			return nil, err
		}

		if facet == query.FacetReleaseYear {
			var years []int64
			for _, gpl := range e.snap.GamePlatforms {
				if gpl.ReleaseYear.Valid {
					years = append(years, gpl.ReleaseYear.Int64)
				}
			}
			slices.Sort(years)
			years = slices.Compact(years)

			values := make([]string, len(years))
			for i, y := range years {
				values[i] = query.YearText(y)
			}
			return values, nil
		}

		var names []string
		add := func(valid bool, s string) {
			if valid && s != "" {
				names = append(names, s)
			}
		}
		switch facet {
		case query.FacetPlatformName:
			for _, r := range e.snap.Platforms {
				add(r.Name.Valid, r.Name.String)
			}
		case query.FacetPublisherName:
			for _, r := range e.snap.Publishers {
				add(r.Name.Valid, r.Name.String)
			}
		case query.FacetGenreName:
			for _, r := range e.snap.Genres {
				add(r.Name.Valid, r.Name.String)
			}
		case query.FacetRegionName:
			for _, r := range e.snap.Regions {
				add(r.Name.Valid, r.Name.String)
			}
		}
		slices.Sort(names)
		names = slices.Compact(names)
		if names == nil {
			names = []string{}
		}
		return names, nil
	})
}
