package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/detection"
)

func TestNewScheduleFromConfig(t *testing.T) {
	workspaceID, accountID, payeeID := uuid.New(), uuid.New(), uuid.New()
	cfg := detection.ScheduleConfig{
		Name:       "Gym (Every 2 Weeks)",
		AmountType: detection.AmountTypeApproximate,
		Amount:     decimal.RequireFromString("42.50"),
		Recurring:  true,
		Frequency:  detection.PatternTypeWeekly,
		Interval:   2,
		StartDate:  calendar.New(2024, 3, 8),
	}

	s := NewScheduleFromConfig(workspaceID, accountID, payeeID, nil, cfg)

	assert.Equal(t, "Gym (Every 2 Weeks)", s.Name)
	assert.Equal(t, ScheduleStatusActive, s.Status)
	assert.Equal(t, "approximate", s.AmountType)
	assert.True(t, s.Recurring)
	require.Len(t, s.Dates, 1)
	assert.Equal(t, "weekly", s.Dates[0].Frequency)
	assert.Equal(t, 2, s.Dates[0].Interval)
	assert.True(t, s.Dates[0].StartDate.Equal(calendar.New(2024, 3, 8)))
	assert.Nil(t, s.Dates[0].EndDate)
	assert.NoError(t, s.Validate())
}

func TestSchedule_Validate(t *testing.T) {
	base := func() Schedule {
		return Schedule{
			WorkspaceID: uuid.New(),
			AccountID:   uuid.New(),
			PayeeID:     uuid.New(),
			Name:        "Rent (Monthly)",
			AmountType:  "exact",
			Amount:      decimal.NewFromInt(1500),
			Status:      ScheduleStatusActive,
		}
	}

	s := base()
	assert.NoError(t, s.Validate())

	s = base()
	s.PayeeID = uuid.Nil
	assert.EqualError(t, s.Validate(), "payee ID is required")

	s = base()
	s.AmountType = "range"
	assert.EqualError(t, s.Validate(), "range schedules require a second amount")

	s = base()
	s.AmountType = "guess"
	assert.EqualError(t, s.Validate(), "invalid amount type")

	s = base()
	s.Status = "deleted"
	assert.ErrorIs(t, s.Validate(), ErrInvalidScheduleStatus)
}

func TestScheduleDate_BeforeCreate(t *testing.T) {
	sd := &ScheduleDate{ScheduleID: uuid.New(), Frequency: "monthly", StartDate: calendar.New(2024, 1, 1)}
	require.NoError(t, sd.BeforeCreate(nil))
	assert.Equal(t, 1, sd.Interval)
	assert.NotEqual(t, uuid.Nil, sd.ID)

	bad := &ScheduleDate{ScheduleID: uuid.New(), Frequency: "hourly", StartDate: calendar.New(2024, 1, 1)}
	assert.Error(t, bad.BeforeCreate(nil))
}
