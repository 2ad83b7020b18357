// Package matching resolves raw payee strings from bank imports against
// previously confirmed mappings (transfer targets and payee aliases).
package matching

import (
	"regexp"
	"strings"
)

// Normalize lowercases s, trims it, and collapses whitespace runs to a
// single space. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

type cleaningStep struct {
	name    string
	pattern *regexp.Regexp
}

// cleaningSteps strip bank-statement noise. Order matters: amounts and
// dates go before the generic number rules so that "01/15" is not read
// as a reference number, and suffixes go last so they are trailing.
var cleaningSteps = []cleaningStep{
	{name: "currency_amount", pattern: regexp.MustCompile(`\$\s?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?`)},
	{name: "trailing_amount", pattern: regexp.MustCompile(`\s+-?\d+\.\d{2}$`)},
	{name: "slash_date", pattern: regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)},
	{name: "dash_date", pattern: regexp.MustCompile(`\b(?:\d{4}-\d{1,2}-\d{1,2}|\d{1,2}-\d{1,2}-\d{2,4})\b`)},
	{name: "transaction_id", pattern: regexp.MustCompile(`[*#]+\s*[A-Za-z0-9]{8,}`)},
	{name: "long_number", pattern: regexp.MustCompile(`\b\d{8,}\b`)},
	{name: "trailing_reference", pattern: regexp.MustCompile(`\s+\d{4,7}$`)},
	{name: "masked_card", pattern: regexp.MustCompile(`(?:\*{4,}|[Xx]{4,})\d{4}\b`)},
	{name: "stray_i", pattern: regexp.MustCompile(`\s+I$`)},
	{name: "corporate_suffix", pattern: regexp.MustCompile(`(?i)[\s,]+(?:inc|llc|ltd|corp|co)\.?$`)},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean strips amounts, dates, reference numbers, masked card numbers and
// corporate suffixes from a raw bank description, then collapses
// whitespace. Case is preserved.
func Clean(raw string) string {
	cleaned := strings.TrimSpace(raw)
	for _, step := range cleaningSteps {
		cleaned = strings.TrimSpace(step.pattern.ReplaceAllString(cleaned, " "))
	}
	return whitespaceRun.ReplaceAllString(cleaned, " ")
}
