package models

import "time"

// FlightOption is one synthetic flight offer.
type FlightOption struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Departure   time.Time `json:"departure"`
	Arrival     time.Time `json:"arrival"`
	Airline     string    `json:"airline"`
	CabinClass  string    `json:"cabin_class"` // e.g. "economy"
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
}

// HotelOption is one synthetic hotel offer for a full stay.
type HotelOption struct {
	ID              string  `json:"id"`
	DestinationCity string  `json:"destination_city"`
	Name            string  `json:"name"`
	CheckIn         Date    `json:"check_in"`
	CheckOut        Date    `json:"check_out"`
	PricePerNight   float64 `json:"price_per_night"`
	TotalPrice      float64 `json:"total_price"`
	Currency        string  `json:"currency"`
	Rating          float64 `json:"rating"`
}
