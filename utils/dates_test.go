package utils_test

import (
	"testing"
	"time"

	"ledgerbook-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	first, last := utils.MonthRange(time.Date(2026, 2, 14, 13, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.February, last.Month())
	assert.Equal(t, 28, last.Day())
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 3, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, utils.DaysBetween(start, end))
}
