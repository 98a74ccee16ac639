package mapper

import (
	"townmate-be/internal/model"
	"townmate-be/pkg/store"
)

// PlaceMapper converts between the persisted catalog row and the engine's
// in-memory representation.
type PlaceMapper struct{}

func NewPlaceMapper() *PlaceMapper {
	return &PlaceMapper{}
}

func (m *PlaceMapper) ToStore(p *model.Place) store.Place {
	return store.Place{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Tags:          []string(p.Tags),
		Features:      []string(p.Features),
		Price:         p.Price,
		Rating:        p.Rating,
		Lat:           p.Lat,
		Lng:           p.Lng,
		DistanceLabel: p.DistanceLabel,
		DurationLabel: p.DurationLabel,
		Description:   p.Description,
	}
}

func (m *PlaceMapper) ToStoreSlice(rows []*model.Place) []store.Place {
	out := make([]store.Place, 0, len(rows))
	for _, r := range rows {
		out = append(out, m.ToStore(r))
	}
	return out
}

func (m *PlaceMapper) ToModel(p store.Place) *model.Place {
	return &model.Place{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Tags:          p.Tags,
		Features:      p.Features,
		Price:         p.Price,
		Rating:        p.Rating,
		Lat:           p.Lat,
		Lng:           p.Lng,
		DistanceLabel: p.DistanceLabel,
		DurationLabel: p.DurationLabel,
		Description:   p.Description,
		IsActive:      true,
	}
}
