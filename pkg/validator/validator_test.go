package validator

import (
	"strings"
	"testing"
)

type point struct {
	Lat float64 `validate:"lat"`
	Lng float64 `validate:"lng"`
}

func TestValidateStruct_LatLng(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(point{Lat: 24.7136, Lng: 46.6753}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := ValidateStruct(point{Lat: 90.5, Lng: 0}); err == nil {
		t.Fatalf("expected lat error")
	}
	if err := ValidateStruct(point{Lat: 0, Lng: -180.1}); err == nil {
		t.Fatalf("expected lng error")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(point{Lat: 100, Lng: 200})
	got := Describe(err)
	if !strings.Contains(got, "lat: lat") || !strings.Contains(got, "lng: lng") {
		t.Fatalf("unexpected description %q", got)
	}
}
