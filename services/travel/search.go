package travel

import (
	"context"
	"fmt"
	"time"

	"voyago/models"
)

// SearchService produces flight and hotel offers for a date range, filtered
// by the caller's budget ceiling and priced in the caller's currency. The
// engine only ever sees this interface; the synthetic generator below is one
// implementation of the contract.
type SearchService interface {
	SearchFlights(ctx context.Context, origin, destination string, span models.DateRange, maxBudget *float64, currency string) ([]models.FlightOption, error)
	SearchHotels(ctx context.Context, destinationCity string, span models.DateRange, maxBudgetTotal *float64, currency string) ([]models.HotelOption, error)
}

// DefaultSearchService synthesizes a small deterministic set of offers. A
// real system would call a GDS or hotel inventory API here.
type DefaultSearchService struct{}

const (
	flightBasePrice     = 300.0
	flightPriceStep     = 50.0
	hotelBaseNightly    = 80.0
	hotelNightlyStep    = 30.0
	offerCandidateCount = 3
)

func (s *DefaultSearchService) SearchFlights(ctx context.Context, origin, destination string, span models.DateRange, maxBudget *float64, currency string) ([]models.FlightOption, error) {
	flights := make([]models.FlightOption, 0, offerCandidateCount)
	for i := 0; i < offerCandidateCount; i++ {
		price := flightBasePrice + float64(i)*flightPriceStep
		if maxBudget != nil && price > *maxBudget {
			continue
		}
		departure := span.Start.AddDays(i).Time.Add(time.Duration(9+i) * time.Hour)
		flights = append(flights, models.FlightOption{
			ID:          fmt.Sprintf("FL-%s-%s-%d", origin, destination, i),
			Origin:      origin,
			Destination: destination,
			Departure:   departure,
			Arrival:     departure.Add(7 * time.Hour),
			Airline:     "Demo Air",
			CabinClass:  "economy",
			Price:       price,
			Currency:    currency,
		})
	}
	return flights, nil
}

func (s *DefaultSearchService) SearchHotels(ctx context.Context, destinationCity string, span models.DateRange, maxBudgetTotal *float64, currency string) ([]models.HotelOption, error) {
	nights := span.Days()
	if nights <= 0 {
		nights = 1
	}
	hotels := make([]models.HotelOption, 0, offerCandidateCount)
	for i := 0; i < offerCandidateCount; i++ {
		nightly := hotelBaseNightly + float64(i)*hotelNightlyStep
		total := nightly * float64(nights)
		if maxBudgetTotal != nil && total > *maxBudgetTotal {
			continue
		}
		hotels = append(hotels, models.HotelOption{
			ID:              fmt.Sprintf("HT-%s-%d", destinationCity, i),
			DestinationCity: destinationCity,
			Name:            fmt.Sprintf("Demo Hotel %d", i),
			CheckIn:         span.Start,
			CheckOut:        span.End,
			PricePerNight:   nightly,
			TotalPrice:      total,
			Currency:        currency,
			Rating:          3.5 + float64(i)*0.5,
		})
	}
	return hotels, nil
}
