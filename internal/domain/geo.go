package domain

import "github.com/shopspring/decimal"

// coordPlaces matches the NUMERIC(9,6) columns coordinates are stored in.
const coordPlaces = 6

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// NormalizePoint rounds both coordinates to the precision the database keeps,
// so a value read back equals the value written.
func NormalizePoint(p GeoPoint) GeoPoint {
	return GeoPoint{
		Lat: decimal.NewFromFloat(p.Lat).Round(coordPlaces).InexactFloat64(),
		Lng: decimal.NewFromFloat(p.Lng).Round(coordPlaces).InexactFloat64(),
	}
}
