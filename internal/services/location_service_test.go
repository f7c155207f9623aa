package services

import (
	"reflect"
	"testing"

	"traveleon/internal/models"
)

func sampleLocations() []models.Location {
	return []models.Location{
		{ID: 1, Name: "Kandy Fort", Type: "Historical Fort"},
		{ID: 2, Name: "Galle Beach", Type: "Beach"},
		{ID: 3, Name: "Sigiriya Rock", Type: "Historical Fort"},
	}
}

func TestFilterLocationsBySearch(t *testing.T) {
	got := FilterLocations(sampleLocations(), "kandy", "")

	if len(got) != 1 {
		t.Fatalf("expected 1 location, got %d", len(got))
	}
	if got[0].Name != "Kandy Fort" {
		t.Errorf("unexpected match: %q", got[0].Name)
	}
}

func TestFilterLocationsByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantIDs  []int
	}{
		{"exact label", "Historical Fort", []int{1, 3}},
		{"case and spacing ignored", "historicalfort", []int{1, 3}},
		{"all passes everything", "all", []int{1, 2, 3}},
		{"empty passes everything", "", []int{1, 2, 3}},
		{"no match", "Temple", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLocations(sampleLocations(), "", tt.category)

			var ids []int
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("got ids %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestFilterLocationsCombined(t *testing.T) {
	got := FilterLocations(sampleLocations(), "rock", "Historical Fort")

	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only Sigiriya Rock, got %#v", got)
	}
}

func TestFilterLocationsIdempotent(t *testing.T) {
	once := FilterLocations(sampleLocations(), "a", "Historical Fort")
	twice := FilterLocations(once, "a", "Historical Fort")

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second application changed the result: %#v vs %#v", once, twice)
	}
}

func TestFilterLocationsDoesNotMutateInput(t *testing.T) {
	input := sampleLocations()
	FilterLocations(input, "kandy", "")

	if !reflect.DeepEqual(input, sampleLocations()) {
		t.Errorf("input slice was mutated: %#v", input)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Historical Fort", "historicalfort"},
		{"historicalFort", "historicalfort"},
		{"BEACH", "beach"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
