package extraction

import (
	"regexp"
	"time"
)

// Reports carry the visit date after an "Atendimento" marker, as dd/mm/yyyy.
var reportDatePattern = regexp.MustCompile(`Atendimento\s*:\s*(\d{2}/\d{2}/\d{4})`)

// ExtractReportDate returns the report's attendance date, or nil when the
// marker is missing or the literal is not a real calendar date (e.g.
// 32/01/2023). A missing date is an expected outcome, not an error, and
// every caller must tolerate it.
func ExtractReportDate(text string) *time.Time {
	match := reportDatePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	date, err := time.Parse("02/01/2006", match[1])
	if err != nil {
		return nil
	}
	return &date
}
