package prompt

import (
	"time"

	"vintnerlab/internal/util/jsonutil"
)

// BuildUserPrompt assembles the user-turn message for an exercise. Every arm
// substitutes a default when the input is absent or empty, so an empty inputs
// map still yields a complete, runnable prompt. Unknown types fall back to a
// raw JSON dump; the dispatcher rejects them before this is reachable, but the
// dump keeps the function total.
func BuildUserPrompt(t ExerciseType, inputs map[string]any) string {
	switch t {
	case TastingNotes:
		return "Create tasting notes using ONLY this information (do not invent details):\n\n" +
			"WINERY AND WINE DETAILS:\n" + field(inputs, "wineInfo", "Georgia red wine blend") + "\n\n" +
			"Tone: " + field(inputs, "tone", "Classic") + "\n" +
			"Target audience: " + field(inputs, "audience", "Traditional wine drinkers") + "\n\n" +
			"Remember: Use the EXACT winery name and wine names provided above. Do not make up wines or details."

	case OwnerAnalysis:
		return "Analyze this sales data and provide insights:\n" +
			field(inputs, "data", "Sample data: Chardonnay $12,500, Merlot $8,200, Rosé $15,800, Cab Franc $6,100, Muscadine $22,000") + "\n" +
			"Focus area: " + field(inputs, "focus", "General overview")

	case VineyardPlanning:
		return "Create a 7-day planning checklist:\n" +
			"Season stage: " + field(inputs, "season", "Veraison") + "\n" +
			"Risk factors: " + field(inputs, "risks", "Normal conditions") + "\n" +
			"7-day forecast: " + field(inputs, "forecast", "Mixed sun and clouds, chance of rain Thursday")

	case TastingRoomScripts:
		return "Create tasting room scripts:\n" +
			"Vibe: " + field(inputs, "vibe", "Casual") + "\n" +
			"Featured wines: " + field(inputs, "featuredWines", "Chardonnay, Merlot, Muscadine") + "\n" +
			"Club offer: " + field(inputs, "clubOffer", "Quarterly shipments with 20% discount")

	case EventMarketing:
		return "Create marketing content for this event:\n" +
			"Winery name: " + field(inputs, "wineryName", "Not specified - use generic phrasing") + "\n" +
			"Winery location: " + field(inputs, "wineryLocation", "Georgia") + "\n" +
			"Event type: " + field(inputs, "eventType", "Live music") + "\n" +
			"Date: " + eventDate(inputs) + "\n" +
			"Target audience: " + field(inputs, "audience", "Locals") + "\n" +
			"Offer: " + field(inputs, "offer", "General admission")

	case NumbersToAction:
		return "Analyze this data and recommend one action:\n" +
			field(inputs, "data", "Monthly sales: Jan $45K, Feb $38K, Mar $52K, Apr $61K") + "\n" +
			"Focus: " + field(inputs, "focus", "General")

	case StaffTraining:
		return "Create training material for: " + field(inputs, "topic", "Handling wine questions")

	case LaborSchedule:
		return "Create a staffing recommendation:\n" +
			"Expected visitors: " + field(inputs, "visitors", "200-300 per weekend") + "\n" +
			"Events this week: " + field(inputs, "events", "None") + "\n" +
			"Current staff: " + field(inputs, "staff", "4 part-time")

	case WineClubCampaign:
		return "Create a wine club campaign:\n" +
			"Campaign goal: " + field(inputs, "goal", "New member acquisition") + "\n" +
			"Current benefits: " + field(inputs, "benefits", "Quarterly shipments, 20% discount, exclusive events")

	case CustomerSOP:
		return "Create an SOP for: " + field(inputs, "scenario", "Handling customer complaints")

	case JobDescription:
		return "Create a job description:\n" +
			"Position: " + field(inputs, "position", "Tasting Room Associate") + "\n" +
			"Hours: " + field(inputs, "hours", "Part-time weekends") + "\n" +
			"Experience needed: " + field(inputs, "experience", "Entry level, wine knowledge a plus")

	case COGSModel:
		return "Analyze costs and margins:\n" +
			"Wine type: " + field(inputs, "wineType", "Red blend") + "\n" +
			"Bottle price: " + field(inputs, "price", "$28") + "\n" +
			"Known costs: " + field(inputs, "costs", "Grapes $8/bottle, bottling $3/bottle")

	case ComplianceChecklist:
		return "Generate compliance questions for: " + field(inputs, "area", "TTB label approval")

	case VineTriage:
		return "Help identify what to check for these observations:\n" +
			"Symptoms observed: " + field(inputs, "symptoms", "Yellowing leaves on some vines") + "\n" +
			"Location: " + field(inputs, "location", "Lower section near creek") + "\n" +
			"Season: " + field(inputs, "season", "Mid-summer")

	case WineryFAQ:
		return "Create personalized FAQs for this winery using all the context provided.\n" +
			"Focus areas: " + field(inputs, "focus", "General visitor questions") + "\n" +
			"Number of FAQs needed: " + field(inputs, "count", "5")

	case SocialCalendar:
		return "Create a weekly social media content calendar for this winery.\n" +
			"Goals: " + field(inputs, "goals", "Increase engagement and visits") + "\n" +
			"Posting frequency: " + field(inputs, "frequency", "4 times per week")

	case ThankYouEmail:
		return "Create a thank-you email for visitors to this winery.\n" +
			"Visit type: " + field(inputs, "visitType", "Tasting room visit") + "\n" +
			"Purchase made: " + field(inputs, "purchase", "Wine purchase")

	default:
		b, err := jsonutil.MarshalNoEscape(inputs)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// field resolves one named input, falling back to def when the value is
// absent or empty. Non-string scalars are rendered via stringification, never
// rejected; zero and false count as empty, matching how the browser client
// treated unfilled form state.
func field(inputs map[string]any, key, def string) string {
	v, ok := inputs[key]
	if !ok || v == nil {
		return def
	}
	switch x := v.(type) {
	case string:
		if x == "" {
			return def
		}
		return x
	case float64:
		if x == 0 {
			return def
		}
	case bool:
		if !x {
			return def
		}
	}
	return jsonutil.StringifyValue(v)
}

// exampleEventDate is used when no date is supplied. A fixed example, not
// time.Now: the generated copy must not silently claim today's date.
const exampleEventDate = "Saturday, March 15"

// eventDate renders the event-marketing date field. An ISO calendar date
// becomes a long human-readable form ("Monday, January 2"); anything that is
// not one passes through as-is.
func eventDate(inputs map[string]any) string {
	raw := field(inputs, "date", "")
	if raw == "" {
		return exampleEventDate
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return d.Format("Monday, January 2")
}
