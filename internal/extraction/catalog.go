// Package extraction locates clinical metrics and a report date inside the
// free-form text of a scanned laboratory report. Matching is driven by a
// declarative, ordered pattern catalog rather than per-metric branching, so
// catalog order and uniqueness are enforceable invariants.
package extraction

import (
	"fmt"
	"regexp"

	"healthform-server/internal/models"
)

// MatchRule binds one tracked metric to its search pattern and canonical
// unit. The pattern's first capture group is the numeric literal; the unit is
// always taken from the rule, never re-derived from the matched text.
type MatchRule struct {
	Metric  models.Metric
	Pattern *regexp.Regexp
	Unit    string
}

// Catalog is an immutable, ordered table of match rules. Order is
// significant: it defines the output order of extracted measurements and is
// stable across calls and process runs.
type Catalog struct {
	rules   []MatchRule
	tracked map[models.Metric]bool
}

// NewCatalog builds a catalog from rules, rejecting duplicate metrics. A
// duplicate is a configuration error, not a runtime condition.
func NewCatalog(rules []MatchRule) (*Catalog, error) {
	tracked := make(map[models.Metric]bool, len(rules))
	for _, r := range rules {
		if tracked[r.Metric] {
			return nil, fmt.Errorf("duplicate match rule for metric %q", r.Metric)
		}
		tracked[r.Metric] = true
	}
	return &Catalog{rules: rules, tracked: tracked}, nil
}

// MustCatalog is NewCatalog that panics on error, for package-level catalogs.
func MustCatalog(rules []MatchRule) *Catalog {
	c, err := NewCatalog(rules)
	if err != nil {
		panic(err)
	}
	return c
}

// Rules returns the rules in declaration order. Callers must not mutate the
// returned slice.
func (c *Catalog) Rules() []MatchRule {
	return c.rules
}

// Metrics returns the tracked metric identifiers in catalog order.
func (c *Catalog) Metrics() []models.Metric {
	metrics := make([]models.Metric, len(c.rules))
	for i, r := range c.rules {
		metrics[i] = r.Metric
	}
	return metrics
}

// Tracks reports whether the catalog has a rule for the given metric.
func (c *Catalog) Tracks(m models.Metric) bool {
	return c.tracked[m]
}

// defaultCatalog matches the Brazilian lab-report layout the service was
// built for. Labels may be separated from their result by a "RESULTADO:"
// marker and arbitrary text, including line breaks, hence (?s) on the rules
// that bridge label and result.
var defaultCatalog = MustCatalog([]MatchRule{
	{Metric: models.MetricHemoglobin, Pattern: regexp.MustCompile(`HEMOGLOBINA\s*([\d,.]+)\s*g/dL`), Unit: "g/dL"},
	{Metric: models.MetricHematocrit, Pattern: regexp.MustCompile(`HEMATÓCRITO\s*([\d,.]+)\s*%`), Unit: "%"},
	{Metric: models.MetricRedBloodCell, Pattern: regexp.MustCompile(`HEMÁCIAS\s*([\d,.]+)\s*milhões/mm3`), Unit: "milhões/mm3"},
	{Metric: models.MetricGlycatedHemoglobin, Pattern: regexp.MustCompile(`(?s)HEMOGLOBINA GLICADA - HbA1c\s*.*?RESULTADO:\s*([\d,.]+)\s*%`), Unit: "%"},
	{Metric: models.MetricAST, Pattern: regexp.MustCompile(`(?s)TRANSAMINASE OXALACÉTICA TGO \(AST\).*?RESULTADO:\s*([\d,.]+)\s*U/L`), Unit: "U/L"},
	{Metric: models.MetricALT, Pattern: regexp.MustCompile(`(?s)TRANSAMINASE PIRÚVICA TGP \(ALT\).*?RESULTADO:\s*([\d,.]+)\s*U/L`), Unit: "U/L"},
	{Metric: models.MetricUrea, Pattern: regexp.MustCompile(`(?s)UREIA\s*.*?RESULTADO:\s*([\d,.]+)\s*mg/dL`), Unit: "mg/dL"},
	{Metric: models.MetricCreatinine, Pattern: regexp.MustCompile(`(?s)CREATININA\s*.*?RESULTADO:\s*([\d,.]+)\s*mg/dL`), Unit: "mg/dL"},
})

// DefaultCatalog returns the built-in catalog. Changing the tracked metric
// set means redeploying with a new catalog; there is no mutation API.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
