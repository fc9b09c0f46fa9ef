package extract

import (
	"reflect"
	"testing"
)

func TestNormalize_CapsAndCases(t *testing.T) {
	wines := make([]any, 0, 11)
	for i := 0; i < 11; i++ {
		wines = append(wines, "Merlot")
	}
	raw := map[string]any{
		"wineryName":     "",
		"wines":          wines,
		"grapeVarieties": []any{"CABERNET"},
		"wineStyles":     []any{},
		"tastingNotes":   "",
	}

	got := Normalize(raw, "https://willow-creek-vineyards.wine/")

	if len(got.Wines) != 10 {
		t.Fatalf("wines not capped: %d", len(got.Wines))
	}
	if !reflect.DeepEqual(got.GrapeVarieties, []string{"cabernet"}) {
		t.Fatalf("varieties: got=%v", got.GrapeVarieties)
	}
	if len(got.WineStyles) != 0 {
		t.Fatalf("styles: got=%v", got.WineStyles)
	}
	if got.WineryName != "Willow Creek Vineyards Winery" {
		t.Fatalf("derived name: got=%q", got.WineryName)
	}
}

func TestNormalize_DefaultsAbsentFields(t *testing.T) {
	got := Normalize(map[string]any{"wineryName": "Willow Creek"}, "https://example.com")
	if got.WineryName != "Willow Creek" {
		t.Fatalf("name: got=%q", got.WineryName)
	}
	if got.Location != "" || got.YearFounded != "" || got.Description != "" || got.TastingNotes != "" {
		t.Fatalf("string fields should default empty: %+v", got)
	}
	if got.Wines == nil || got.GrapeVarieties == nil || got.WineStyles == nil {
		t.Fatalf("slice fields must be non-nil: %+v", got)
	}
}

func TestNormalize_NonArrayListsIgnored(t *testing.T) {
	got := Normalize(map[string]any{"wines": "Merlot, Chardonnay"}, "https://example.com")
	if len(got.Wines) != 0 {
		t.Fatalf("non-array wines should drop: %v", got.Wines)
	}
}

func TestNameFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://willow-creek-vineyards.wine/", "Willow Creek Vineyards Winery"},
		{"https://www.stonebridge.com/tastings", "Stonebridge Winery"},
		{"https://oakHollow.net", "Oak Hollow Winery"},
		{"https://red_barn.org", "Red Barn Winery"},
		{"not a url", "Winery"},
		{"", "Winery"},
	}
	for _, tc := range cases {
		if got := NameFromURL(tc.url); got != tc.want {
			t.Fatalf("%q: got=%q want=%q", tc.url, got, tc.want)
		}
	}
}

func TestEmpty_AllFieldsPresent(t *testing.T) {
	e := Empty()
	if e.Wines == nil || e.GrapeVarieties == nil || e.WineStyles == nil {
		t.Fatalf("Empty must allocate slices: %+v", e)
	}
	if len(e.Wines)+len(e.GrapeVarieties)+len(e.WineStyles) != 0 {
		t.Fatalf("Empty must be empty: %+v", e)
	}
}
