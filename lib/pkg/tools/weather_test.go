package tools

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeatherSuccess(t *testing.T) {
	tb := newTestToolbox(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "48.85341", q.Get("latitude"))
		assert.Equal(t, "2.3488", q.Get("longitude"))
		assert.Equal(t, weatherVariables, q.Get("current"))
		assert.Equal(t, "America/Chicago", q.Get("timezone"))

		w.Write([]byte(`{
			"latitude":48.86,"longitude":2.35,"timezone":"America/Chicago",
			"current":{"time":"2026-01-15T04:30","temperature_2m":3.4,"is_day":0,
			           "precipitation":0.0,"rain":0.0,"showers":0.0,"snowfall":0.0},
			"current_units":{"temperature_2m":"°C","precipitation":"mm"}
		}`))
	})

	out := tb.getWeather(weatherInput{Latitude: 48.85341, Longitude: 2.3488})
	require.Equal(t, "success", out.Status)
	assert.InDelta(t, 48.86, out.Latitude, 1e-6)
	assert.Equal(t, "America/Chicago", out.Timezone)
	assert.Equal(t, 3.4, out.Current["temperature_2m"])
	assert.Equal(t, "°C", out.CurrentUnits["temperature_2m"])
}

func TestGetWeatherHTTPError(t *testing.T) {
	tb := newTestToolbox(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	out := tb.getWeather(weatherInput{Latitude: 1, Longitude: 2})
	assert.Equal(t, "error", out.Status)
	assert.Contains(t, out.Error, "500")
}

func TestGetWeatherBadJSON(t *testing.T) {
	tb := newTestToolbox(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude": not-json`))
	})

	out := tb.getWeather(weatherInput{Latitude: 1, Longitude: 2})
	assert.Equal(t, "error", out.Status)
	assert.NotEmpty(t, out.Error)
}
