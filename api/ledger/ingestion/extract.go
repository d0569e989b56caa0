package ingestion

import (
	"regexp"
	"strings"
)

// The extractor is a priority chain of partial parsers: strategies are tried
// in order and the first one whose predicate accepts the text wins. Every
// sub-field is optional; a miss is an information gap, not an error. The
// input is adversarial free text produced by many unrelated booking tools,
// so precision is favored but the ladder still squeezes out partial matches.

type extractStrategy struct {
	name    string
	applies func(text string) bool
	extract func(text string) (ExtractedFields, bool)
}

var (
	titlePrefixRe = regexp.MustCompile(`(?i)^(?:MR|MRS|MISS|MS)\.?\s+`)
	routeTokenRe  = regexp.MustCompile(`^[A-Z]{3}[/-][A-Z]{3}$`)
	pnrTokenRe    = regexp.MustCompile(`^[A-Z0-9]{5,}$`)
	slashTokenRe  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

	// Labeled-composite variants, strictest first: PNR-prefixed booking
	// code, then a bare 5-8 char code, then a maximally permissive form that
	// tolerates 2-4 letter route legs and ragged spacing.
	labeledCompositeRes = []*regexp.Regexp{
		regexp.MustCompile(`^\s*(.+?)\s+([A-Z]{3}[/-][A-Z]{3})\s+(PNR[A-Z0-9]+)\s+(\d{4}-\d{2}-\d{2})\s*$`),
		regexp.MustCompile(`^\s*(.+?)\s+([A-Z]{3}[/-][A-Z]{3})\s+([A-Z0-9]{5,8})\s+(\d{4}-\d{2}-\d{2})\s*$`),
		regexp.MustCompile(`^\s*(.+?)\s+([A-Z]{2,4}[/-][A-Z]{2,4})\s+([A-Z0-9]{3,10})\s+(\d{4}-\d{2}-\d{2})\s*$`),
	}

	// Narration-only patterns. The route form accepts multi-leg routings
	// like KHI/DXB/LHE.
	narrationRouteRe = regexp.MustCompile(`\b[A-Z]{3}(?:[/-][A-Z]{3}){1,4}\b`)
	narrationPNRRe   = regexp.MustCompile(`\b[A-Z0-9]{5,8}\b`)
)

var compositeStrategies = []extractStrategy{
	{name: "sales-narration", applies: isSalesNarration, extract: extractSalesNarration},
	{name: "labeled-composite", applies: anyLabeledComposite, extract: extractLabeledComposite},
	{name: "token-scan", applies: func(string) bool { return true }, extract: extractTokenScan},
}

// ExtractComposite recovers customer name, route, PNR and flying date from a
// composite cell, stopping at the first strategy that matches.
func ExtractComposite(text string) ExtractedFields {
	for _, s := range compositeStrategies {
		if !s.applies(text) {
			continue
		}
		if fields, ok := s.extract(text); ok {
			return fields
		}
	}
	return ExtractedFields{}
}

// ExtractNarration scans plain narration text for route, PNR and flying date
// independently. Used when a row has no composite column at all.
func ExtractNarration(text string) ExtractedFields {
	var out ExtractedFields

	route := narrationRouteRe.FindString(text)
	if route != "" {
		out.Route = &route
	}
	// Any PNR-shaped token other than the route counts, digits or not; an
	// all-caps word can collide and that ambiguity is accepted.
	for _, tok := range narrationPNRRe.FindAllString(text, -1) {
		if tok == route {
			continue
		}
		pnr := tok
		out.PNR = &pnr
		break
	}
	if m := slashDateRe.FindString(text); m != "" {
		if t, err := parseDate(m); err == nil {
			out.FlyingDate = &t
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Strategy 1: sales narration ("SALES - MR JOHN DOE - DXB/LHE - 94A63T - 06/12/2024")
// ---------------------------------------------------------------------------

func isSalesNarration(text string) bool {
	return strings.Contains(strings.ToUpper(text), "SALES")
}

func extractSalesNarration(text string) (ExtractedFields, bool) {
	parts := strings.Split(text, " - ")
	if len(parts) < 5 {
		return ExtractedFields{}, false
	}
	var out ExtractedFields

	name := stripTitlePrefix(strings.TrimSpace(parts[1]))
	if name != "" {
		out.CustomerName = &name
	}
	route := strings.TrimSpace(parts[2])
	if route != "" {
		out.Route = &route
	}
	pnr := strings.TrimSpace(parts[3])
	if pnr != "" {
		out.PNR = &pnr
	}
	if t, err := parseDate(strings.TrimSpace(parts[4])); err == nil {
		out.FlyingDate = &t
	}
	return out, true
}

// ---------------------------------------------------------------------------
// Strategy 2: labeled composite ("Ali Khan DXB-LHE PNR54321 2025-08-01")
// ---------------------------------------------------------------------------

func anyLabeledComposite(text string) bool {
	for _, re := range labeledCompositeRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func extractLabeledComposite(text string) (ExtractedFields, bool) {
	for _, re := range labeledCompositeRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var out ExtractedFields
		name := stripTitlePrefix(strings.TrimSpace(m[1]))
		if name != "" {
			out.CustomerName = &name
		}
		route := strings.ReplaceAll(m[2], "/", "-")
		out.Route = &route
		pnr := m[3]
		out.PNR = &pnr
		if t, err := parseDate(m[4]); err == nil {
			out.FlyingDate = &t
		}
		return out, true
	}
	return ExtractedFields{}, false
}

// ---------------------------------------------------------------------------
// Strategy 3: token scan. Always matches; recovers whatever fragments exist
// rather than discarding the row's travel metadata entirely.
// ---------------------------------------------------------------------------

func extractTokenScan(text string) (ExtractedFields, bool) {
	var out ExtractedFields
	tokens := strings.Fields(text)

	routeIdx := -1
	for i, tok := range tokens {
		if routeTokenRe.MatchString(tok) {
			route := tok
			out.Route = &route
			routeIdx = i
			break
		}
	}
	if routeIdx > 0 {
		name := stripTitlePrefix(strings.Join(tokens[:routeIdx], " "))
		if name != "" {
			out.CustomerName = &name
		}
	}
	// The first long alphanumeric token after the route is taken as the PNR.
	// A long surname can collide with this; the tradeoff is accepted.
	for i := routeIdx + 1; i < len(tokens); i++ {
		if len(tokens[i]) >= 5 && pnrTokenRe.MatchString(tokens[i]) {
			pnr := tokens[i]
			out.PNR = &pnr
			break
		}
	}
	for _, tok := range tokens {
		if slashTokenRe.MatchString(tok) {
			if t, err := parseDate(tok); err == nil {
				out.FlyingDate = &t
				break
			}
		}
	}
	return out, true
}

func stripTitlePrefix(name string) string {
	return strings.TrimSpace(titlePrefixRe.ReplaceAllString(name, ""))
}
