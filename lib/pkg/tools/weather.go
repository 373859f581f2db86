package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const weatherDescription = `Returns the current weather conditions for a given latitude and longitude using the Open-Meteo API.

This tool requires precise coordinates: first use the geocode tool to convert a city name, then call this one with the latitude and longitude of the first result.`

// weatherVariables is the fixed "current" variable list requested from the
// forecast API.
const weatherVariables = "temperature_2m,is_day,precipitation,rain,showers,snowfall"

type weatherInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude coordinate of the location in decimal degrees"`
	Longitude float64 `json:"longitude" jsonschema:"longitude coordinate of the location in decimal degrees"`
}

type weatherOutput struct {
	Status       string         `json:"status"`
	Error        string         `json:"error,omitempty"`
	Latitude     float64        `json:"latitude,omitempty"`
	Longitude    float64        `json:"longitude,omitempty"`
	Timezone     string         `json:"timezone,omitempty"`
	Current      map[string]any `json:"current,omitempty"`
	CurrentUnits map[string]any `json:"current_units,omitempty"`
}

func weatherError(msg string) weatherOutput {
	return weatherOutput{Status: statusError, Error: msg}
}

func (tb *Toolbox) getWeather(in weatherInput) weatherOutput {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(in.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(in.Longitude, 'f', -1, 64))
	params.Set("current", weatherVariables)
	params.Set("timezone", "America/Chicago")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tb.cfg.ForecastBaseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return weatherError(fmt.Sprintf("Network error occurred: %v", err))
	}
	resp, err := tb.http.Do(req)
	if err != nil {
		return weatherError(fmt.Sprintf("Network error occurred: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return weatherError(fmt.Sprintf("HTTP error occurred: status code %d", resp.StatusCode))
	}

	var doc map[string]any
	if err := jsonx.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return weatherError(fmt.Sprintf("Other error occurred: %v", err))
	}

	return weatherOutput{
		Status:       statusSuccess,
		Latitude:     floatField(doc, "latitude"),
		Longitude:    floatField(doc, "longitude"),
		Timezone:     strField(doc, "timezone"),
		Current:      objField(doc, "current"),
		CurrentUnits: objField(doc, "current_units"),
	}
}
