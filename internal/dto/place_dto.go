package dto

type PlaceResponse struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Tags          []string `json:"tags"`
	Features      []string `json:"features"`
	Price         int      `json:"price"`
	PriceLabel    string   `json:"price_label"`
	Rating        float64  `json:"rating"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	DistanceLabel string   `json:"distance_label,omitempty"`
	DurationLabel string   `json:"duration_label,omitempty"`
	Description   string   `json:"description,omitempty"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
	Total  int             `json:"total"`
}
