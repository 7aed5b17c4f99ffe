package extraction

import (
	"testing"

	"healthform-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTextRecoverer(t *testing.T) {
	report := &models.LabReport{
		FileType: "text/plain; charset=utf-8",
		FileData: []byte("HEMOGLOBINA 13,5 g/dL"),
	}
	text, err := PlainTextRecoverer{}.Recover(report)
	require.NoError(t, err)
	assert.Equal(t, "HEMOGLOBINA 13,5 g/dL", text)
}

func TestPlainTextRecovererUnsupportedType(t *testing.T) {
	report := &models.LabReport{FileType: "application/pdf", FileData: []byte("%PDF-1.4")}
	_, err := PlainTextRecoverer{}.Recover(report)
	assert.Error(t, err)
}
