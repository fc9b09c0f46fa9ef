package extract

import (
	"context"
	"errors"
	"fmt"

	"vintnerlab/internal/llmclient"
	"vintnerlab/internal/util/jsonutil"
)

// ErrUnparseable marks a reply that arrived but yielded no JSON object.
var ErrUnparseable = errors.New("extract: no parseable object in reply")

const systemPrompt = `You are a winery information extractor. Given a winery website URL, extract key information about the winery. Always respond with valid JSON only, no other text.

Respond with this exact JSON structure:
{
  "wineryName": "The winery's full name",
  "location": "City, State or region",
  "yearFounded": "Year as string or empty string if unknown",
  "description": "Brief 1-2 sentence description of the winery",
  "wines": ["Wine name 1", "Wine name 2", "etc - list their actual wine products"],
  "grapeVarieties": ["variety 1", "variety 2", "etc - lowercase"],
  "wineStyles": ["dry", "sweet", "etc - lowercase"],
  "tastingNotes": "Any tasting descriptors mentioned like 'notes of cherry and oak'"
}`

const userPromptFormat = `Extract winery information from this website: %s

Find and return:
1. The winery's name
2. Their location (city, state/region)
3. Year founded if mentioned
4. A brief description
5. List of their wines/products
6. Grape varieties they use
7. Wine styles (dry, sweet, etc.)
8. Any tasting notes or flavor descriptions

Return ONLY valid JSON, no other text.`

// Extractor asks a search-grounded completion client for structured winery
// facts about a URL. A nil client means no credential was configured.
type Extractor struct {
	client llmclient.Client
}

func New(client llmclient.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract runs the pipeline for one URL. On any failure the returned info is
// Empty() and the error says which stage gave out; the caller maps that to a
// fallback envelope, never a hard error.
func (e *Extractor) Extract(ctx context.Context, sourceURL string) (WineryInfo, error) {
	if e.client == nil {
		return Empty(), llmclient.ErrNoCredential
	}

	reply, err := e.client.Complete(ctx, systemPrompt, fmt.Sprintf(userPromptFormat, sourceURL))
	if err != nil {
		return Empty(), err
	}

	obj := jsonutil.ExtractObject(reply)
	if obj == nil {
		return Empty(), ErrUnparseable
	}
	return Normalize(obj, sourceURL), nil
}
