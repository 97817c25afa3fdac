package newsbytes

import "strings"

// SummaryWordLimit is the target word count for summaries, applied
// exactly by the fallback summarizer and advisorily by the AI prompt.
const SummaryWordLimit = 60

// FallbackSummary builds a deterministic summary by truncating the body
// to the first SummaryWordLimit whitespace-delimited words, joined with
// single spaces. Bodies longer than the limit get a trailing ellipsis
// marker. Pure function of the input text; requires no network access.
func FallbackSummary(body string) string {
	words := strings.Fields(body)
	if len(words) <= SummaryWordLimit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:SummaryWordLimit], " ") + "..."
}

// categoryKeywords maps each non-default category to the lower-cased
// keywords that vote for it. Substring matches over title+body count as
// votes; the category with the most votes wins, and no votes at all
// falls through to DefaultCategory.
var categoryKeywords = map[string][]string{
	CategoryTechnology: {
		"software", "hardware", "startup", " app ", "smartphone",
		"artificial intelligence", " ai ", "machine learning", "chip",
		"semiconductor", "cyber", "google", "apple", "microsoft",
		"amazon", "meta", "tech", "robot", "cloud computing", "coding",
		"developer", "silicon valley",
	},
	CategorySports: {
		"game", "match", "team", "player", "league", "championship",
		"tournament", "coach", "season", "score", "goal", "football",
		"basketball", "baseball", "soccer", "tennis", "cricket",
		"olympic", "stadium", "playoff", "athlete",
	},
	CategoryBusiness: {
		"market", "stock", "economy", "revenue", "earnings", "profit",
		"investor", "invest", "shares", "merger", "acquisition",
		"company", "ceo", "bank", "trade", "inflation", "startup funding",
		"quarterly", "ipo", "wall street",
	},
}

// GuessCategory picks a category for an article from keyword votes over
// its title and body. Ties and keyword-free text resolve to
// DefaultCategory. Pure function; the deterministic counterpart to the
// AI categorization step.
func GuessCategory(title, body string) string {
	// Pad with spaces so word-boundary keywords like " ai " can match
	// at the edges of the text.
	text := " " + strings.ToLower(title+" "+body) + " "

	best := DefaultCategory
	bestVotes := 0
	for _, category := range Categories {
		votes := 0
		for _, kw := range categoryKeywords[category] {
			votes += strings.Count(text, kw)
		}
		if votes > bestVotes {
			best = category
			bestVotes = votes
		}
	}
	return best
}
