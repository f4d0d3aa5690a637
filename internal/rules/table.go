// Package rules provides the static vendor-to-category fallback table.
// It is consulted only when no sufficient historical evidence exists for
// a vendor; history always outranks these hand-authored rules.
package rules

import "strings"

// Rule maps a vendor-name substring to a default category. Label is the
// human-readable name quoted in suggestion reasons.
type Rule struct {
	Pattern  string
	Category string
	Label    string
}

// Table is an ordered, read-only rule lookup. Earlier rules win.
type Table struct {
	rules []Rule
}

// defaultRules covers vendors a German freelancer runs into constantly.
// Patterns are matched case-insensitively as substrings of the raw vendor
// text; order matters where patterns overlap.
var defaultRules = []Rule{
	// Hosting and cloud
	{Pattern: "aws", Category: "hosting", Label: "Amazon Web Services"},
	{Pattern: "amazon web services", Category: "hosting", Label: "Amazon Web Services"},
	{Pattern: "hetzner", Category: "hosting", Label: "Hetzner Online"},
	{Pattern: "ionos", Category: "hosting", Label: "IONOS"},
	{Pattern: "strato", Category: "hosting", Label: "Strato"},
	{Pattern: "netcup", Category: "hosting", Label: "netcup"},
	{Pattern: "digitalocean", Category: "hosting", Label: "DigitalOcean"},
	{Pattern: "all-inkl", Category: "hosting", Label: "All-Inkl"},

	// Telecom
	{Pattern: "telekom", Category: "telecom", Label: "Deutsche Telekom"},
	{Pattern: "vodafone", Category: "telecom", Label: "Vodafone"},
	{Pattern: "1&1", Category: "telecom", Label: "1&1"},
	{Pattern: "telefonica", Category: "telecom", Label: "Telefónica"},
	{Pattern: "o2", Category: "telecom", Label: "O2"},
	{Pattern: "congstar", Category: "telecom", Label: "congstar"},

	// Software and subscriptions
	{Pattern: "adobe", Category: "software", Label: "Adobe"},
	{Pattern: "jetbrains", Category: "software", Label: "JetBrains"},
	{Pattern: "microsoft", Category: "software", Label: "Microsoft"},
	{Pattern: "github", Category: "software", Label: "GitHub"},
	{Pattern: "atlassian", Category: "software", Label: "Atlassian"},
	{Pattern: "slack", Category: "software", Label: "Slack"},
	{Pattern: "figma", Category: "software", Label: "Figma"},
	{Pattern: "lexoffice", Category: "software", Label: "lexoffice"},

	// Travel
	{Pattern: "deutsche bahn", Category: "travel", Label: "Deutsche Bahn"},
	{Pattern: "db vertrieb", Category: "travel", Label: "Deutsche Bahn"},
	{Pattern: "bahn.de", Category: "travel", Label: "Deutsche Bahn"},
	{Pattern: "lufthansa", Category: "travel", Label: "Lufthansa"},
	{Pattern: "sixt", Category: "travel", Label: "Sixt"},
	{Pattern: "flixbus", Category: "travel", Label: "FlixBus"},

	// Insurance
	{Pattern: "allianz", Category: "insurance", Label: "Allianz"},
	{Pattern: "axa", Category: "insurance", Label: "AXA"},
	{Pattern: "huk", Category: "insurance", Label: "HUK-Coburg"},
	{Pattern: "hiscox", Category: "insurance", Label: "Hiscox"},

	// Office supplies
	{Pattern: "staples", Category: "office", Label: "Staples"},
	{Pattern: "viking", Category: "office", Label: "Viking"},
	{Pattern: "büroshop", Category: "office", Label: "Büroshop24"},
	{Pattern: "mcpaper", Category: "office", Label: "McPaper"},

	// Banking and fees
	{Pattern: "sparkasse", Category: "bank_fees", Label: "Sparkasse"},
	{Pattern: "kontoführung", Category: "bank_fees", Label: "Kontoführung"},
}

// NewTable creates a rule table with the built-in default rules.
func NewTable() *Table {
	return &Table{rules: defaultRules}
}

// NewTableWithRules creates a rule table from an explicit rule list,
// keeping the given order.
func NewTableWithRules(rules []Rule) *Table {
	return &Table{rules: rules}
}

// Match scans the table in order and returns the first rule whose pattern
// occurs in the vendor text, case-insensitively. The second return value
// reports whether any rule matched.
func (t *Table) Match(vendorText string) (Rule, bool) {
	text := strings.ToLower(strings.TrimSpace(vendorText))
	if text == "" {
		return Rule{}, false
	}

	for _, rule := range t.rules {
		if strings.Contains(text, rule.Pattern) {
			return rule, true
		}
	}

	return Rule{}, false
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}
