// Package registry holds the fixed schema tables of the link catalog:
// category names, input value types, paywall tiers, and URL formatters.
// The tables are membership-only and fixed at build time; extending one is
// a deliberate source edit, never a runtime operation.
package registry

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Categories maps a source filename stem to its display category name.
// Files whose stem is not listed here are skipped with a warning.
var Categories = map[string]string{
	"archives-press":      "Archives & Press",
	"environment-science": "Environment & Science",
	"government-legal":    "Government & Legal",
	"hash-cracking":       "Hash Cracking",
	"historical":          "Historical",
	"maps":                "Maps",
	"network-scanning":    "Network Scanning",
	"people-search":       "People Search",
	"search-files":        "Search & Files",
	"social-video":        "Social & Video",
	"social-profiles":     "Social Profiles",
	"threat-intelligence": "Threat Intelligence",
	"username-search":     "Username Search",
	"validation-tools":    "Validation & Tools",
	"vehicle-lookup":      "Vehicle Lookup",
	"whois-dns":           "WHOIS & DNS",
}

// Types lists every input value type a link may declare.
var Types = []string{
	"name", "alias", "domain", "email-address", "ip-address", "IPV6",
	"phone-number", "hashtag", "url", "gps-coordinates", "crypto-address",
	"VIN", "hash", "any",
}

// Paywalls lists the recognised access-cost tiers.
var Paywalls = []string{"Free", "Freemium", "Paid"}

// Formatters lists the named transformations allowed in URL placeholders.
var Formatters = []string{
	"urlEncode", "base64", "lower", "upper",
	"stripPunct", "spaceToNothing", "spaceToDash", "spaceToDot",
	"userFromEmail", "domainFromEmail", "firstName", "lastName",
	"noEncoding", "firstIP",
}

// Membership rules over the tables, shared by the validators.
var (
	TypeRule      = validation.In(anySlice(Types)...)
	PaywallRule   = validation.In(anySlice(Paywalls)...)
	FormatterRule = validation.In(anySlice(Formatters)...)
)

// CategoryFor returns the display category for a filename stem.
func CategoryFor(stem string) (string, bool) {
	name, ok := Categories[stem]
	return name, ok
}

func anySlice(vals []string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
