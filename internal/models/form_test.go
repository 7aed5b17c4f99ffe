package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValuesOrderAndCount(t *testing.T) {
	weight := "70"
	notes := "follow-up in 6 months"
	form := HealthForm{Weight: &weight, ImportantNotes: &notes}

	values := form.ProfileValues()
	require.Len(t, values, 11)
	assert.Equal(t, &weight, values[0])
	assert.Equal(t, &notes, values[9])
	assert.Nil(t, values[1]) // height not set
}
