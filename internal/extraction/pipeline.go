package extraction

import (
	"time"

	"healthform-server/internal/models"
)

// Pipeline runs the field and date extractors over one document's text. It
// holds no mutable state; a single pipeline may be shared across goroutines
// processing different documents.
type Pipeline struct {
	catalog *Catalog
}

// NewPipeline creates a pipeline over the given catalog.
func NewPipeline(catalog *Catalog) *Pipeline {
	return &Pipeline{catalog: catalog}
}

// Catalog returns the catalog the pipeline extracts with.
func (p *Pipeline) Catalog() *Catalog {
	return p.catalog
}

// Process extracts measurements and the report date from text. Every
// returned measurement is stamped with reportID and the shared report date;
// one document has exactly one report date, never a per-metric one. An empty
// or unrecognizable text yields an empty result and a nil date, which is a
// successful run.
func (p *Pipeline) Process(text, reportID string) ([]models.Measurement, *time.Time) {
	reportDate := ExtractReportDate(text)
	measurements := ExtractValues(p.catalog, text)
	for i := range measurements {
		measurements[i].ReportID = reportID
		measurements[i].ReportDate = reportDate
	}
	return measurements, reportDate
}
