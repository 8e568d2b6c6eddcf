// README: Catalog fixture tests (determinism and shape).
package search

import (
	"context"
	"reflect"
	"testing"
)

func TestCatalogIsDeterministic(t *testing.T) {
	catalog := NewCatalog()
	ctx := context.Background()

	first, err := catalog.SearchFlights(ctx, "Paris, France", 10)
	if err != nil {
		t.Fatalf("SearchFlights: %v", err)
	}
	again, _ := catalog.SearchFlights(ctx, "Paris, France", 10)
	if !reflect.DeepEqual(first, again) {
		t.Error("flight fixtures must not vary between calls")
	}

	hotels, err := catalog.SearchHotels(ctx, "Paris, France", 10)
	if err != nil {
		t.Fatalf("SearchHotels: %v", err)
	}
	if len(hotels) == 0 {
		t.Fatal("expected hotel fixtures")
	}
	for _, h := range hotels {
		if h.Nightly <= 0 || h.Rating <= 0 {
			t.Errorf("hotel %s has invalid fixture values: %+v", h.ID, h)
		}
	}
}

func TestDestinationCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Paris, France", "Paris"},
		{"Tokyo", "Tokyo"},
		{"  Rome , Italy", "Rome"},
		{"", "Destination"},
		{",", "Destination"},
	}
	for _, tc := range cases {
		if got := destinationCode(tc.in); got != tc.want {
			t.Errorf("destinationCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
