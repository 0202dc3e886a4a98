package agent

import (
	"fmt"
	"strings"

	"voyago/models"
)

// BuildVacationPlan assembles a full itinerary from the chosen destination,
// date span, flight, and hotel. Pure: same inputs, same plan.
//
// The day count is end minus start in days, floored to 1, so a same-day or
// inverted range still yields one day. The total is flight price plus hotel
// total, with no discounting, tax, or currency conversion; the currency comes
// from preferences and is assumed consistent with the offers.
func BuildVacationPlan(userID, destinationCity string, span models.DateRange, flight models.FlightOption, hotel models.HotelOption, prefs models.UserPreferences) models.VacationPlan {
	numDays := span.Days()
	if numDays <= 0 {
		numDays = 1
	}

	interests := "free time"
	if len(prefs.Interests) > 0 {
		interests = strings.Join(prefs.Interests, ", ")
	}

	daily := make([]models.DayPlan, 0, numDays)
	for i := 0; i < numDays; i++ {
		daily = append(daily, models.DayPlan{
			Date:      span.Start.AddDays(i),
			Morning:   fmt.Sprintf("Explore a local attraction in %s.", destinationCity),
			Afternoon: fmt.Sprintf("Enjoy something related to your interests: %s.", interests),
			Evening:   fmt.Sprintf("Dinner at a recommended spot in %s.", destinationCity),
		})
	}

	return models.VacationPlan{
		UserID:             userID,
		DestinationCity:    destinationCity,
		StartDate:          span.Start,
		EndDate:            span.End,
		Flight:             flight,
		Hotel:              hotel,
		DailyPlans:         daily,
		EstimatedTotalCost: flight.Price + hotel.TotalPrice,
		Currency:           prefs.DefaultCurrency,
		Status:             models.PlanStatusPlanned,
	}
}
