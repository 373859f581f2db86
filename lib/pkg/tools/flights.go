package tools

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const flightsSearchDescription = `Searches for flights between specified locations and dates via Google Flights.

Use airport or city codes for origin and destination (e.g. "NYC", "SFO", "LHR"). Dates are YYYY-MM-DD; the departure date must not be in the past and the return date (optional, for round trips) must not be before departure. stops is one of "any", "nonstop", "1stop", "2stops"; flight_class is "economy", "premium_economy", "business" or "first". Airlines are IATA codes (e.g. ["UA", "AA"]).`

const dateLayout = "2006-01-02"

// flightClassParams maps the cabin class names onto the wire values.
var flightClassParams = map[string]string{
	"economy":         "ECONOMY",
	"premium_economy": "PREMIUM_ECONOMY",
	"business":        "BUSINESS",
	"first":           "FIRST",
}

var stopsParams = map[string]string{
	"nonstop": "0",
	"1stop":   "1",
	"2stops":  "2",
}

type flightsSearchInput struct {
	Origin        string   `json:"origin"                   validate:"required"                                                                 jsonschema:"origin airport or city code, e.g. NYC or SFO"`
	Destination   string   `json:"destination"              validate:"required"                                                                 jsonschema:"destination airport or city code, e.g. LHR or PAR"`
	DepartureDate string   `json:"departure_date"           validate:"required"                                                                 jsonschema:"departure date in YYYY-MM-DD format"`
	ReturnDate    string   `json:"return_date,omitempty"    jsonschema:"optional return date for round trips, YYYY-MM-DD"`
	Adults        int      `json:"adults"                   validate:"min=0"                                                                    jsonschema:"number of adult passengers (12+)"`
	Children      int      `json:"children"                 validate:"min=0"                                                                    jsonschema:"number of child passengers (2-11)"`
	Infants       int      `json:"infants"                  validate:"min=0"                                                                    jsonschema:"number of infant passengers (under 2)"`
	Stops         string   `json:"stops,omitempty"          validate:"omitempty,oneof=any nonstop 1stop 2stops"                                 jsonschema:"stops filter: any, nonstop, 1stop or 2stops"`
	FlightClass   string   `json:"flight_class,omitempty"   validate:"omitempty,oneof=economy premium_economy business first"                   jsonschema:"cabin: economy, premium_economy, business or first"`
	MaxPrice      int      `json:"max_price,omitempty"      validate:"min=0"                                                                    jsonschema:"maximum price in the given currency"`
	Currency      string   `json:"currency,omitempty"       jsonschema:"three-letter currency code, default USD"`
	Airlines      []string `json:"airlines,omitempty"       jsonschema:"preferred airlines as IATA codes"`
}

type flightEndpoint struct {
	Airport string `json:"airport"`
	Time    string `json:"time"`
}

type flightOption struct {
	FlightType      string         `json:"flight_type,omitempty"`
	Price           any            `json:"price"`
	Duration        any            `json:"duration"`
	Departure       flightEndpoint `json:"departure"`
	Arrival         flightEndpoint `json:"arrival"`
	Airline         string         `json:"airline"`
	Stops           int            `json:"stops"`
	Layovers        []any          `json:"layovers,omitempty"`
	CarbonEmissions any            `json:"carbon_emissions,omitempty"`
}

type flightsSearchOutput struct {
	Status              string         `json:"status"`
	Error               string         `json:"error,omitempty"`
	Origin              string         `json:"origin,omitempty"`
	Destination         string         `json:"destination,omitempty"`
	DepartureDate       string         `json:"departure_date,omitempty"`
	ReturnDate          string         `json:"return_date,omitempty"`
	BestFlights         []flightOption `json:"best_flights,omitempty"`
	OtherFlights        []flightOption `json:"other_flights,omitempty"`
	AirlinesInformation []any          `json:"airlines_information,omitempty"`
	PriceInsights       map[string]any `json:"price_insights,omitempty"`
	SearchMetadata      searchMetadata `json:"search_metadata"`
}

func flightsError(msg string) flightsSearchOutput {
	return flightsSearchOutput{Status: statusError, Error: msg}
}

// validateFlightDates rejects malformed or past-tense dates before any
// network call is made.
func (tb *Toolbox) validateFlightDates(in flightsSearchInput) string {
	departure, err := time.Parse(dateLayout, in.DepartureDate)
	if err != nil {
		return "Invalid date format. Please use YYYY-MM-DD format."
	}
	// Compare against the local calendar day, not the UTC day: a traveler
	// west of UTC can book a same-day evening flight.
	y, m, d := tb.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if departure.Before(today) {
		return fmt.Sprintf("Departure date %s is in the past. Please provide a future date.", in.DepartureDate)
	}
	if in.ReturnDate != "" {
		returnDay, err := time.Parse(dateLayout, in.ReturnDate)
		if err != nil {
			return "Invalid date format. Please use YYYY-MM-DD format."
		}
		if returnDay.Before(departure) {
			return fmt.Sprintf("Return date %s cannot be before departure date %s.", in.ReturnDate, in.DepartureDate)
		}
	}
	return ""
}

func (tb *Toolbox) flightsSearch(in flightsSearchInput) flightsSearchOutput {
	if err := tb.validate.Struct(in); err != nil {
		return flightsError(fmt.Sprintf("Invalid arguments: %v", err))
	}
	if msg := tb.validateFlightDates(in); msg != "" {
		return flightsError(msg)
	}

	origin := strings.ToUpper(in.Origin)
	destination := strings.ToUpper(in.Destination)
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	adults := in.Adults
	if adults == 0 {
		adults = 1
	}

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", origin)
	params.Set("arrival_id", destination)
	params.Set("outbound_date", in.DepartureDate)
	params.Set("currency", currency)
	params.Set("adults", strconv.Itoa(adults))
	if in.ReturnDate != "" {
		params.Set("return_date", in.ReturnDate)
	}
	if in.Children > 0 {
		params.Set("children", strconv.Itoa(in.Children))
	}
	if in.Infants > 0 {
		params.Set("infants_in_seat", strconv.Itoa(in.Infants))
	}
	if class, ok := flightClassParams[in.FlightClass]; ok {
		params.Set("flight_class", class)
	}
	if maxStops, ok := stopsParams[in.Stops]; ok {
		params.Set("max_stops", maxStops)
	}
	if in.MaxPrice > 0 {
		params.Set("price_max", strconv.Itoa(in.MaxPrice))
	}
	if len(in.Airlines) > 0 {
		params.Set("airlines", strings.Join(in.Airlines, ","))
	}

	doc, errMsg := tb.serpGet("flight search", params)
	if errMsg != "" {
		return flightsError(errMsg)
	}

	out := flightsSearchOutput{
		Status:              statusSuccess,
		Origin:              origin,
		Destination:         destination,
		DepartureDate:       in.DepartureDate,
		ReturnDate:          in.ReturnDate,
		AirlinesInformation: arrField(doc, "airlines_information"),
		PriceInsights:       objField(doc, "price_insights"),
		SearchMetadata:      metadataFrom(doc, "Google Flights"),
	}

	for _, item := range objItems(doc, "best_flights") {
		option := flightOptionFrom(item)
		option.FlightType = strField(item, "flight_type")
		option.CarbonEmissions = item["carbon_emissions"]
		out.BestFlights = append(out.BestFlights, option)
	}
	for _, item := range objItems(doc, "other_flights") {
		out.OtherFlights = append(out.OtherFlights, flightOptionFrom(item))
	}

	return out
}

func flightOptionFrom(item map[string]any) flightOption {
	departure := objField(item, "departure")
	arrival := objField(item, "arrival")
	return flightOption{
		Price:    item["price"],
		Duration: item["duration"],
		Departure: flightEndpoint{
			Airport: strField(departure, "airport"),
			Time:    strField(departure, "time"),
		},
		Arrival: flightEndpoint{
			Airport: strField(arrival, "airport"),
			Time:    strField(arrival, "time"),
		},
		Airline:  strField(item, "airline"),
		Stops:    intField(item, "stops"),
		Layovers: arrField(item, "layovers"),
	}
}
