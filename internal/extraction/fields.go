package extraction

import (
	"strings"

	"healthform-server/internal/models"
)

// ExtractValues applies every catalog rule to text, in catalog order, and
// returns one measurement per matched rule. Only the first occurrence of a
// metric is used. Metrics whose pattern does not match are omitted entirely:
// absence means the document did not mention the metric, which is not the
// same as a zero or unknown value.
//
// The captured literal has every comma replaced by a dot (Brazilian reports
// use comma decimal separators); no other parsing or validation happens here,
// so the transform is lossless and idempotent. Report ID and report date are
// stamped later by the pipeline.
func ExtractValues(catalog *Catalog, text string) []models.Measurement {
	var out []models.Measurement
	for _, rule := range catalog.Rules() {
		match := rule.Pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		out = append(out, models.Measurement{
			Metric: rule.Metric,
			Value:  strings.ReplaceAll(match[1], ",", "."),
			Unit:   rule.Unit,
		})
	}
	return out
}
