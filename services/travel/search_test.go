package travel_test

import (
	"context"
	"testing"
	"time"

	"voyago/models"
	"voyago/services/travel"

	"github.com/stretchr/testify/require"
)

func tripSpan() models.DateRange {
	return models.DateRange{
		Start: models.NewDate(2025, time.March, 5),
		End:   models.NewDate(2025, time.March, 10),
	}
}

// TestSearchFlightsGeneratesCandidates checks the synthetic generator emits
// three priced offers in the requested currency with staggered departures.
func TestSearchFlightsGeneratesCandidates(t *testing.T) {
	svc := &travel.DefaultSearchService{}

	flights, err := svc.SearchFlights(context.Background(), "SIN", "Tokyo", tripSpan(), nil, "USD")
	require.NoError(t, err)
	require.Len(t, flights, 3)

	require.Equal(t, []float64{300, 350, 400}, []float64{flights[0].Price, flights[1].Price, flights[2].Price})
	for i, f := range flights {
		require.Equal(t, "SIN", f.Origin)
		require.Equal(t, "Tokyo", f.Destination)
		require.Equal(t, "USD", f.Currency)
		require.True(t, f.Arrival.After(f.Departure))
		require.Equal(t, tripSpan().Start.AddDays(i).String(), models.DateOf(f.Departure).String())
	}
}

// TestSearchFlightsBudgetCeiling checks offers above the ceiling are dropped
// rather than repriced.
func TestSearchFlightsBudgetCeiling(t *testing.T) {
	svc := &travel.DefaultSearchService{}

	budget := 360.0
	flights, err := svc.SearchFlights(context.Background(), "SIN", "Tokyo", tripSpan(), &budget, "USD")
	require.NoError(t, err)
	require.Len(t, flights, 2)
	for _, f := range flights {
		require.LessOrEqual(t, f.Price, budget)
	}

	impossible := 10.0
	flights, err = svc.SearchFlights(context.Background(), "SIN", "Tokyo", tripSpan(), &impossible, "USD")
	require.NoError(t, err)
	require.Empty(t, flights)
}

// TestSearchHotelsPricesFullStay checks nightly rates scale by the stay
// length and totals respect the budget ceiling.
func TestSearchHotelsPricesFullStay(t *testing.T) {
	svc := &travel.DefaultSearchService{}

	hotels, err := svc.SearchHotels(context.Background(), "Tokyo", tripSpan(), nil, "USD")
	require.NoError(t, err)
	require.Len(t, hotels, 3)
	for _, h := range hotels {
		require.Equal(t, "Tokyo", h.DestinationCity)
		require.Equal(t, "USD", h.Currency)
		require.InDelta(t, h.PricePerNight*5, h.TotalPrice, 0.001)
	}

	budget := 500.0
	hotels, err = svc.SearchHotels(context.Background(), "Tokyo", tripSpan(), &budget, "USD")
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	require.InDelta(t, 400.0, hotels[0].TotalPrice, 0.001)
}

// TestSearchHotelsSameDayStay checks a same-day span is billed as a single
// night instead of zero.
func TestSearchHotelsSameDayStay(t *testing.T) {
	svc := &travel.DefaultSearchService{}
	day := models.NewDate(2025, time.March, 5)

	hotels, err := svc.SearchHotels(context.Background(), "Tokyo", models.DateRange{Start: day, End: day}, nil, "USD")
	require.NoError(t, err)
	require.Len(t, hotels, 3)
	require.InDelta(t, 80.0, hotels[0].TotalPrice, 0.001)
}
