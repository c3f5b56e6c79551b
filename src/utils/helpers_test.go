package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateConfirmationCode(t *testing.T) {
	code := GenerateConfirmationCode()
	assert.Len(t, code, 8)
	for _, c := range code {
		assert.Contains(t, confirmationCodeCharset, string(c))
	}

	other := GenerateConfirmationCode()
	assert.NotEqual(t, code, other)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "£12.50", FormatPrice(12.5))
	assert.Equal(t, "£0.00", FormatPrice(0))
}

func TestFormatEventDate(t *testing.T) {
	date := time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC)
	assert.Equal(t, "Saturday, 14 March 2026, 19:30", FormatEventDate(date))
}
