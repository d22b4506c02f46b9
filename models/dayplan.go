package models

import (
	"fmt"
	"time"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/google/uuid"
)

// CalculateDays returns the inclusive day count of a trip: a trip ending the
// day it starts is 1 day, and partial days round up. Start after end is a
// validation error.
func CalculateDays(startDate, endDate string) (int, error) {
	start, err := time.Parse(types.DateLayout, startDate)
	if err != nil {
		return 0, errors.ValidationFailed("invalid start date", fmt.Sprintf("%q is not a valid date", startDate))
	}
	end, err := time.Parse(types.DateLayout, endDate)
	if err != nil {
		return 0, errors.ValidationFailed("invalid end date", fmt.Sprintf("%q is not a valid date", endDate))
	}
	if end.Before(start) {
		return 0, errors.ValidationFailed("invalid date range", "end date is before start date")
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}

// initialTheme labels the days of a freshly created trip: arrival first,
// departure last, exploration in between. A one-day trip is all arrival.
func initialTheme(day, totalDays int) string {
	switch {
	case day == 1:
		return "Arrival"
	case day == totalDays:
		return "Departure"
	default:
		return "Exploration"
	}
}

// BuildDailyPlans creates the initial daily plan slots for a new trip.
func BuildDailyPlans(startDate string, totalDays int) []types.DailyPlan {
	plans := make([]types.DailyPlan, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		plans = append(plans, types.DailyPlan{
			ID:         uuid.New().String(),
			Day:        i + 1,
			Date:       planDate(startDate, i),
			Theme:      initialTheme(i+1, totalDays),
			Activities: []types.Activity{},
		})
	}
	return plans
}

// ReconcileDailyPlans adjusts an itinerary's daily plans to a new date
// range. Existing plans keep their themes and activities by position; extra
// days are appended as free days and surplus days are dropped from the end,
// losing their activities. Day numbers and dates are recomputed throughout.
func ReconcileDailyPlans(plans []types.DailyPlan, startDate string, totalDays int) []types.DailyPlan {
	out := make([]types.DailyPlan, 0, totalDays)
	out = append(out, plans...)

	if len(out) > totalDays {
		out = out[:totalDays]
	}
	for len(out) < totalDays {
		out = append(out, types.DailyPlan{
			ID:         uuid.New().String(),
			Theme:      "Free Day",
			Activities: []types.Activity{},
		})
	}

	for i := range out {
		out[i].Day = i + 1
		out[i].Date = planDate(startDate, i)
		if out[i].Activities == nil {
			out[i].Activities = []types.Activity{}
		}
	}
	return out
}

// planDate is the trip start date shifted by the plan's zero-based index.
// An unparseable start date yields an empty date rather than a panic.
func planDate(startDate string, index int) string {
	start, err := time.Parse(types.DateLayout, startDate)
	if err != nil {
		return ""
	}
	return start.AddDate(0, 0, index).Format(types.DateLayout)
}
