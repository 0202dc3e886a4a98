package agent

import (
	"context"
	"encoding/json"

	"voyago/models"
	"voyago/services/calendar"
	"voyago/services/preferences"
	"voyago/services/travel"
)

// The closed capability set. Any name outside this enumeration is a protocol
// violation, never a lookup miss.
const (
	ToolLoadPreferences = "load_preferences"
	ToolFreeDateRanges  = "get_free_date_ranges"
	ToolSearchFlights   = "search_flights"
	ToolSearchHotels    = "search_hotels"
	ToolBuildPlan       = "build_vacation_plan"
)

// toolStages fixes the permitted invocation order. A call may never target a
// stage below the furthest stage already reached in the turn.
var toolStages = map[string]int{
	ToolLoadPreferences: 0,
	ToolFreeDateRanges:  1,
	ToolSearchFlights:   2,
	ToolSearchHotels:    3,
	ToolBuildPlan:       4,
}

type freeDateRangesArgs struct {
	TripDurationDays int `json:"trip_duration_days"`
	WindowDays       int `json:"window_days"`
}

type searchFlightsArgs struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Start       models.Date `json:"start"`
	End         models.Date `json:"end"`
}

type searchHotelsArgs struct {
	DestinationCity string      `json:"destination_city"`
	Start           models.Date `json:"start"`
	End             models.Date `json:"end"`
}

// buildPlanArgs decodes permissively: the model tends to send extra fields
// (daily_plans, currency, estimated cost) alongside the required ones, and
// json.Unmarshal discards unrecognized keys. Intentional leniency.
type buildPlanArgs struct {
	DestinationCity string              `json:"destination_city"`
	Start           models.Date         `json:"start"`
	End             models.Date         `json:"end"`
	Flight          models.FlightOption `json:"flight"`
	Hotel           models.HotelOption  `json:"hotel"`
}

// Toolset executes capability calls against the domain services. Every tool
// runs under the ambient identity of the requesting user; no call may carry a
// different one.
type Toolset struct {
	Preferences preferences.Service
	Calendar    calendar.Service
	Travel      travel.SearchService
}

// Dispatch validates the call's tag, decodes its arguments, and executes it.
// The returned empty flag marks a result the model may legitimately retry.
func (t *Toolset) Dispatch(ctx context.Context, userID string, call ToolCall) (any, bool, error) {
	switch call.Name {
	case ToolLoadPreferences:
		prefs, err := t.Preferences.Get(ctx, userID)
		return prefs, false, err

	case ToolFreeDateRanges:
		var args freeDateRangesArgs
		if err := decodeArgs(call, &args); err != nil {
			return nil, false, err
		}
		if err := t.Calendar.SeedDemoCalendar(ctx, userID); err != nil {
			return nil, false, err
		}
		ranges, err := t.Calendar.FindFreeDateRanges(ctx, userID, args.TripDurationDays, args.WindowDays)
		return ranges, len(ranges) == 0, err

	case ToolSearchFlights:
		var args searchFlightsArgs
		if err := decodeArgs(call, &args); err != nil {
			return nil, false, err
		}
		prefs, err := t.Preferences.Get(ctx, userID)
		if err != nil {
			return nil, false, err
		}
		span := models.DateRange{Start: args.Start, End: args.End}
		flights, err := t.Travel.SearchFlights(ctx, args.Origin, args.Destination, span, prefs.MaxBudget(), prefs.DefaultCurrency)
		return flights, len(flights) == 0, err

	case ToolSearchHotels:
		var args searchHotelsArgs
		if err := decodeArgs(call, &args); err != nil {
			return nil, false, err
		}
		prefs, err := t.Preferences.Get(ctx, userID)
		if err != nil {
			return nil, false, err
		}
		span := models.DateRange{Start: args.Start, End: args.End}
		hotels, err := t.Travel.SearchHotels(ctx, args.DestinationCity, span, prefs.MaxBudgetTotal, prefs.DefaultCurrency)
		return hotels, len(hotels) == 0, err

	case ToolBuildPlan:
		var args buildPlanArgs
		if err := decodeArgs(call, &args); err != nil {
			return nil, false, err
		}
		prefs, err := t.Preferences.Get(ctx, userID)
		if err != nil {
			return nil, false, err
		}
		span := models.DateRange{Start: args.Start, End: args.End}
		plan := BuildVacationPlan(userID, args.DestinationCity, span, args.Flight, args.Hotel, *prefs)
		return &plan, false, nil

	default:
		return nil, false, NewProtocolViolation("unknown tool %q", call.Name)
	}
}

func decodeArgs(call ToolCall, out any) error {
	if len(call.Args) == 0 {
		return nil
	}
	if err := json.Unmarshal(call.Args, out); err != nil {
		return NewProtocolViolation("invalid arguments for %s: %v", call.Name, err)
	}
	return nil
}

// ToolNames lists the capability set, in stage order.
func ToolNames() []string {
	return []string{ToolLoadPreferences, ToolFreeDateRanges, ToolSearchFlights, ToolSearchHotels, ToolBuildPlan}
}
