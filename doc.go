// Package eliqonline is a client library for the Eliq Online energy-monitoring API.
//
// The package never performs network I/O itself. It holds the caller's access
// token, builds requests for the API endpoints, and converts the textual fields
// of API responses into typed values.
//
// # Tools
//
// Tools holds the access token and implements oauth2.TokenSource:
//
//	tools := eliqonline.NewTools(token)
//	tools.AccessToken() // token, verbatim
//
// # Conversions
//
// ToDate, MaybeToDate, ToFloat and MaybeToFloat turn response fields into
// time.Time and float64 values. The Maybe variants take a *string and return
// nil for a nil input, keeping "field absent" apart from "field malformed":
//
//	t, err := eliqonline.MaybeToDate(raw.CreatedDate) // nil, nil when absent
//	if errors.Is(err, eliqonline.ErrFormat) {
//		// present but not YYYY-MM-DDTHH:MM:SS
//	}
//
// # Requests and responses
//
// API builds *http.Request values for the datanow and data endpoints. The
// caller sends them with any http.Client and feeds the response body to
// DecodeDataNow or DecodeData:
//
//	api := eliqonline.NewAPI(token)
//	req, err := api.DataNowRequest(ctx, 0)
//	resp, err := http.DefaultClient.Do(req)
//	now, err := eliqonline.DecodeDataNow(resp.Body)
package eliqonline
