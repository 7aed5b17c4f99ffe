package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReportDate(t *testing.T) {
	date := ExtractReportDate("Atendimento : 01/01/2023")
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), *date)
}

func TestExtractReportDateDayMonthOrder(t *testing.T) {
	date := ExtractReportDate("Atendimento : 02/03/2023")
	require.NotNil(t, date)
	assert.Equal(t, 2, date.Day())
	assert.Equal(t, time.March, date.Month())
}

func TestExtractReportDateNoMatch(t *testing.T) {
	assert.Nil(t, ExtractReportDate("Atendimento : N/A"))
	assert.Nil(t, ExtractReportDate("no date anywhere"))
	assert.Nil(t, ExtractReportDate(""))
}

func TestExtractReportDateInvalidCalendarDate(t *testing.T) {
	assert.Nil(t, ExtractReportDate("Atendimento : 32/01/2023"))
	assert.Nil(t, ExtractReportDate("Atendimento : 01/13/2023"))
}
