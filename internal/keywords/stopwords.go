package keywords

// stopwords is the static bilingual (German and English) stop-word set.
// It covers articles, prepositions, auxiliary and other high-frequency
// verbs, month names, and the literal years that show up in invoice text.
// Tokens shorter than three characters never reach this set.
var stopwords = map[string]struct{}{
	// German articles and pronouns
	"der": {}, "die": {}, "das": {}, "den": {}, "dem": {}, "des": {},
	"ein": {}, "eine": {}, "einen": {}, "einem": {}, "einer": {}, "eines": {},
	"ich": {}, "sie": {}, "wir": {}, "ihr": {}, "uns": {}, "euch": {},
	"sich": {}, "man": {}, "wer": {}, "was": {}, "alle": {}, "allem": {},
	"kein": {}, "keine": {}, "dies": {}, "diese": {}, "dieser": {}, "dieses": {},

	// German prepositions and conjunctions
	"und": {}, "oder": {}, "aber": {}, "auch": {}, "noch": {}, "nur": {},
	"schon": {}, "für": {}, "von": {}, "mit": {}, "bei": {}, "aus": {},
	"nach": {}, "über": {}, "unter": {}, "vor": {}, "zwischen": {},
	"durch": {}, "gegen": {}, "ohne": {}, "zum": {}, "zur": {}, "beim": {},
	"vom": {}, "dass": {}, "wie": {}, "als": {}, "wenn": {}, "dann": {},
	"denn": {}, "sehr": {}, "mehr": {}, "auf": {}, "nicht": {},

	// German auxiliary and common verbs
	"ist": {}, "sind": {}, "war": {}, "waren": {}, "wird": {}, "werden": {},
	"wurde": {}, "wurden": {}, "sein": {}, "haben": {}, "hat": {},
	"hatte": {}, "hatten": {}, "kann": {}, "können": {}, "muss": {},
	"müssen": {}, "soll": {}, "sollen": {}, "wollen": {}, "machen": {},
	"geht": {}, "gibt": {},

	// German month names
	"januar": {}, "februar": {}, "märz": {}, "april": {}, "mai": {},
	"juni": {}, "juli": {}, "august": {}, "september": {}, "oktober": {},
	"november": {}, "dezember": {},

	// English articles, pronouns, prepositions
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "your": {}, "our": {}, "all": {},
	"any": {}, "each": {}, "per": {}, "via": {}, "not": {}, "you": {},

	// English auxiliary and common verbs ("was" is already covered by the
	// German pronoun block)
	"are": {}, "were": {}, "will": {}, "would": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "can": {}, "could": {},
	"shall": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"get": {}, "got": {},

	// English month names (may/august/april shared with German above)
	"january": {}, "february": {}, "march": {}, "june": {}, "july": {},
	"october": {}, "december": {},

	// Literal years common in invoice lines
	"2023": {}, "2024": {}, "2025": {}, "2026": {},
}
