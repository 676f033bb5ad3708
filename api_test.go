package eliqonline_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/florianilch/eliqonline"
)

func TestDataNowRequest(t *testing.T) {
	api := eliqonline.NewAPI("tok&en")

	t.Run("default channel", func(t *testing.T) {
		req, err := api.DataNowRequest(context.Background(), 0)
		require.NoError(t, err)
		require.Equal(t, http.MethodGet, req.Method)
		require.Equal(t, "https://my.eliq.se/api/datanow?accesstoken=tok%26en", req.URL.String())
		require.Equal(t, "application/json", req.Header.Get("Accept"))
	})

	t.Run("explicit channel", func(t *testing.T) {
		req, err := api.DataNowRequest(context.Background(), 32217)
		require.NoError(t, err)
		require.Equal(t, "32217", req.URL.Query().Get("channelid"))
		require.Equal(t, "tok&en", req.URL.Query().Get("accesstoken"))
	})
}

func TestDataRequest(t *testing.T) {
	api := eliqonline.NewAPI("token", eliqonline.WithBaseURL("http://localhost:8080/api/"))
	start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2015, 6, 2, 0, 0, 0, 0, time.UTC)

	req, err := api.DataRequest(context.Background(), start, end, eliqonline.IntervalHour, 0)
	require.NoError(t, err)
	require.Equal(t, "localhost:8080", req.URL.Host)
	require.Equal(t, "/api/data", req.URL.Path)

	q := req.URL.Query()
	require.Equal(t, "token", q.Get("accesstoken"))
	require.Equal(t, "2015-06-01T00:00:00", q.Get("startdate"))
	require.Equal(t, "2015-06-02T00:00:00", q.Get("enddate"))
	require.Equal(t, "hour", q.Get("intervaltype"))
	require.False(t, q.Has("channelid"))

	// Request dates round-trip through ToDate
	parsed, err := eliqonline.ToDate(q.Get("startdate"))
	require.NoError(t, err)
	require.Equal(t, start, parsed)
}

func TestDataRequestValidation(t *testing.T) {
	api := eliqonline.NewAPI("token")
	start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("end before start", func(t *testing.T) {
		_, err := api.DataRequest(context.Background(), start, start.Add(-time.Hour), eliqonline.IntervalDay, 0)
		require.Error(t, err)
	})

	t.Run("equal bounds", func(t *testing.T) {
		_, err := api.DataRequest(context.Background(), start, start, eliqonline.IntervalDay, 0)
		require.Error(t, err)
	})

	t.Run("unknown interval", func(t *testing.T) {
		_, err := api.DataRequest(context.Background(), start, start.Add(time.Hour), eliqonline.IntervalType("week"), 0)
		require.ErrorContains(t, err, "week")
	})
}

func TestAPIToolsHoldToken(t *testing.T) {
	api := eliqonline.NewAPI("verbatim token ")
	require.Equal(t, "verbatim token ", api.Tools().AccessToken())
}
