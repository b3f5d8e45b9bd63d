package models

// Region is a map viewport center.
type Region struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceCandidate is one result of a free-text place search.
type PlaceCandidate struct {
	PlaceID          string  `json:"placeId"`
	FormattedAddress string  `json:"formattedAddress"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// RecentLocation is one entry of a user's most-recently-used searched places.
type RecentLocation struct {
	ID   string  `json:"id"` // place id
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
