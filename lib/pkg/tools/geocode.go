package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const geocodeDescription = `Geocodes a city name into latitude and longitude data using the Open-Meteo Geocoding API.

IMPORTANT: pass ONLY the city name, without state or country. geocode("Paris") is correct; geocode("Paris, France") will fail.

When looking for weather, first use this tool to get coordinates, then pass the latitude and longitude of the first result to get_weather.`

type geocodeInput struct {
	CityName string `json:"city_name" jsonschema:"ONLY the name of the city to geocode, without state or country"`
}

type geocodeResult struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	Population  int64   `json:"population,omitempty"`
}

type geocodeOutput struct {
	Status  string          `json:"status"`
	Error   string          `json:"error,omitempty"`
	Results []geocodeResult `json:"results,omitempty"`
}

func geocodeError(msg string) geocodeOutput {
	return geocodeOutput{Status: statusError, Error: msg}
}

func (tb *Toolbox) geocode(in geocodeInput) geocodeOutput {
	params := url.Values{}
	params.Set("name", in.CityName)
	params.Set("count", "10")
	params.Set("language", "en")
	params.Set("format", "json")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tb.cfg.GeocodingBaseURL+"/v1/search?"+params.Encode(), nil)
	if err != nil {
		return geocodeError(fmt.Sprintf("Network error occurred: %v", err))
	}
	resp, err := tb.http.Do(req)
	if err != nil {
		return geocodeError(fmt.Sprintf("Network error occurred: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geocodeError(fmt.Sprintf("HTTP error occurred: status code %d", resp.StatusCode))
	}

	var doc struct {
		Results []struct {
			ID          int64   `json:"id"`
			Name        string  `json:"name"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
			Country     string  `json:"country"`
			CountryCode string  `json:"country_code"`
			Admin1      string  `json:"admin1"`
			Timezone    string  `json:"timezone"`
			Population  int64   `json:"population"`
		} `json:"results"`
	}
	if err := jsonx.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return geocodeError(fmt.Sprintf("Other error occurred: %v", err))
	}
	if len(doc.Results) == 0 {
		return geocodeError("No results found for the given city")
	}

	out := geocodeOutput{Status: statusSuccess}
	for _, r := range doc.Results {
		out.Results = append(out.Results, geocodeResult{
			ID:          r.ID,
			Name:        r.Name,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Admin1:      r.Admin1,
			Timezone:    r.Timezone,
			Population:  r.Population,
		})
	}
	return out
}
