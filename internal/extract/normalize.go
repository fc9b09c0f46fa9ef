package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// WineryInfo is the structured result of a website extraction. Every field is
// always present in the JSON form; failures produce Empty(), never nil.
type WineryInfo struct {
	WineryName     string   `json:"wineryName"`
	Location       string   `json:"location"`
	YearFounded    string   `json:"yearFounded"`
	Description    string   `json:"description"`
	Wines          []string `json:"wines"`
	GrapeVarieties []string `json:"grapeVarieties"`
	WineStyles     []string `json:"wineStyles"`
	TastingNotes   string   `json:"tastingNotes"`
}

// Empty returns the canonical all-empty result. Slices are allocated so they
// serialize as [] rather than null.
func Empty() WineryInfo {
	return WineryInfo{
		Wines:          []string{},
		GrapeVarieties: []string{},
		WineStyles:     []string{},
	}
}

const (
	maxWines     = 10
	maxVarieties = 8
	maxStyles    = 5
)

// Normalize maps a recovered reply object onto WineryInfo, defaulting absent
// fields, capping list lengths and lower-casing varieties and styles. A blank
// winery name is derived from the source URL so later prompts always have a
// name to personalize with.
func Normalize(raw map[string]any, sourceURL string) WineryInfo {
	info := WineryInfo{
		WineryName:     str(raw["wineryName"]),
		Location:       str(raw["location"]),
		YearFounded:    str(raw["yearFounded"]),
		Description:    str(raw["description"]),
		Wines:          strSlice(raw["wines"], maxWines, false),
		GrapeVarieties: strSlice(raw["grapeVarieties"], maxVarieties, true),
		WineStyles:     strSlice(raw["wineStyles"], maxStyles, true),
		TastingNotes:   str(raw["tastingNotes"]),
	}
	if info.WineryName == "" {
		info.WineryName = NameFromURL(sourceURL)
	}
	return info
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func strSlice(v any, limit int, lower bool) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, limit)
	for _, e := range arr {
		if len(out) == limit {
			break
		}
		s, ok := e.(string)
		if !ok {
			continue
		}
		if lower {
			s = strings.ToLower(s)
		}
		out = append(out, s)
	}
	return out
}

var (
	domainSuffix = regexp.MustCompile(`\.(com|net|org|wine|winery|vineyard|co).*$`)
	separators   = regexp.MustCompile(`[-_]`)
	camelBound   = regexp.MustCompile(`([a-z])([A-Z])`)
)

// NameFromURL derives a display name from a winery website hostname:
// "https://willow-creek-vineyards.wine/" becomes "Willow Creek Vineyards
// Winery". Deterministic and side-effect-free; used only when the extraction
// itself produced no name.
func NameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "Winery"
	}
	name := strings.TrimPrefix(u.Hostname(), "www.")
	name = domainSuffix.ReplaceAllString(name, "")
	name = separators.ReplaceAllString(name, " ")
	name = camelBound.ReplaceAllString(name, "$1 $2")

	words := strings.Split(name, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ") + " Winery"
}
