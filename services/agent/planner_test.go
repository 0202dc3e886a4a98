package agent_test

import (
	"testing"
	"time"

	"voyago/models"
	"voyago/services/agent"

	"github.com/stretchr/testify/require"
)

func planFixtures() (models.FlightOption, models.HotelOption, models.UserPreferences) {
	flight := models.FlightOption{
		ID: "FL-SIN-Tokyo-0", Origin: "SIN", Destination: "Tokyo",
		Airline: "Demo Air", Price: 350, Currency: "USD",
	}
	hotel := models.HotelOption{
		ID: "HT-Tokyo-1", DestinationCity: "Tokyo", Name: "Demo Hotel 1",
		PricePerNight: 110, TotalPrice: 550, Currency: "USD",
	}
	prefs := models.UserPreferences{
		UserID: "u1", DefaultCurrency: "USD",
		Interests: []string{"food", "museums"},
	}
	return flight, hotel, prefs
}

// TestBuildVacationPlanAssemblesItinerary checks the plan carries the chosen
// offers, one day entry per trip day, and the exact undiscounted total.
func TestBuildVacationPlanAssemblesItinerary(t *testing.T) {
	flight, hotel, prefs := planFixtures()
	span := models.DateRange{
		Start: models.NewDate(2025, time.March, 5),
		End:   models.NewDate(2025, time.March, 10),
	}

	plan := agent.BuildVacationPlan("u1", "Tokyo", span, flight, hotel, prefs)

	require.Equal(t, "u1", plan.UserID)
	require.Equal(t, "Tokyo", plan.DestinationCity)
	require.Equal(t, models.PlanStatusPlanned, plan.Status)
	require.Equal(t, "USD", plan.Currency)
	require.Equal(t, flight.ID, plan.Flight.ID)
	require.Equal(t, hotel.ID, plan.Hotel.ID)
	require.InDelta(t, 900.0, plan.EstimatedTotalCost, 0.001)

	require.Len(t, plan.DailyPlans, 5)
	for i, day := range plan.DailyPlans {
		require.Equal(t, span.Start.AddDays(i).String(), day.Date.String())
		require.Contains(t, day.Afternoon, "food, museums")
	}
}

// TestBuildVacationPlanFloorsDayCount checks a same-day or inverted span
// still yields a single-day itinerary.
func TestBuildVacationPlanFloorsDayCount(t *testing.T) {
	flight, hotel, prefs := planFixtures()
	day := models.NewDate(2025, time.March, 5)

	sameDay := agent.BuildVacationPlan("u1", "Tokyo", models.DateRange{Start: day, End: day}, flight, hotel, prefs)
	require.Len(t, sameDay.DailyPlans, 1)
	require.Equal(t, day.String(), sameDay.DailyPlans[0].Date.String())

	inverted := agent.BuildVacationPlan("u1", "Tokyo", models.DateRange{Start: day, End: day.AddDays(-3)}, flight, hotel, prefs)
	require.Len(t, inverted.DailyPlans, 1)
}

// TestBuildVacationPlanWithoutInterests checks the afternoon slot falls back
// to free time when the user has no recorded interests.
func TestBuildVacationPlanWithoutInterests(t *testing.T) {
	flight, hotel, prefs := planFixtures()
	prefs.Interests = nil
	span := models.DateRange{
		Start: models.NewDate(2025, time.March, 5),
		End:   models.NewDate(2025, time.March, 7),
	}

	plan := agent.BuildVacationPlan("u1", "Tokyo", span, flight, hotel, prefs)
	require.Contains(t, plan.DailyPlans[0].Afternoon, "free time")
}

// TestBuildVacationPlanIsDeterministic checks identical inputs produce
// identical plans.
func TestBuildVacationPlanIsDeterministic(t *testing.T) {
	flight, hotel, prefs := planFixtures()
	span := models.DateRange{
		Start: models.NewDate(2025, time.March, 5),
		End:   models.NewDate(2025, time.March, 8),
	}

	a := agent.BuildVacationPlan("u1", "Tokyo", span, flight, hotel, prefs)
	b := agent.BuildVacationPlan("u1", "Tokyo", span, flight, hotel, prefs)
	require.Equal(t, a, b)
}
