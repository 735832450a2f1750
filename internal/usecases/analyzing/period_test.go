package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stockpeak/stock-analytics-api/internal/domain"
)

func TestValidatePeriod_SingleMonth(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	records := []*domain.SalesRecord{
		cleanRecord(time.Date(2025, 7, 3, 9, 0, 0, 0, time.UTC), "A1", 1.0),
		cleanRecord(time.Date(2025, 7, 28, 18, 0, 0, 0, time.UTC), "A2", 1.0),
	}

	service := newTestService()
	key, label := service.ValidatePeriod(records, now)

	assert.Equal(t, "2025-07-01", key)
	assert.Equal(t, "Julho 2025", label)
}

func TestValidatePeriod_MultipleMonthsUsesFirstFound(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	records := []*domain.SalesRecord{
		cleanRecord(time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC), "A1", 1.0),
		cleanRecord(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "A2", 1.0),
		cleanRecord(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), "A3", 1.0),
	}

	service := newTestService()
	key, label := service.ValidatePeriod(records, now)

	assert.Equal(t, "2025-06-01", key)
	assert.Equal(t, "Junho 2025", label)
}

func TestValidatePeriod_NoUsableDatesFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 12, 2, 8, 0, 0, 0, time.UTC)

	records := []*domain.SalesRecord{
		brokenRecord(),
		brokenRecord(),
	}

	service := newTestService()
	key, label := service.ValidatePeriod(records, now)

	assert.Equal(t, "2025-12-01", key)
	assert.Equal(t, "Dezembro 2025", label)
}
