package extraction

import (
	"fmt"
	"strings"

	"healthform-server/internal/models"
)

// TextRecoverer turns a stored lab report into plain text. Rendering scanned
// documents (PDF, images) to text is an external capability; callers treat a
// recovery failure as "no text", which makes the extraction run succeed with
// an empty result.
type TextRecoverer interface {
	Recover(report *models.LabReport) (string, error)
}

// PlainTextRecoverer handles reports whose payload already is text.
type PlainTextRecoverer struct{}

// Recover returns the report body for text payloads and an error for
// anything else.
func (PlainTextRecoverer) Recover(report *models.LabReport) (string, error) {
	if strings.HasPrefix(report.FileType, "text/plain") {
		return string(report.FileData), nil
	}
	return "", fmt.Errorf("no text recovery available for content type %q", report.FileType)
}
