package eliqonline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the Eliq Online API root.
const DefaultBaseURL = "https://my.eliq.se/api"

// Query parameters understood by the API
const (
	paramAccessToken  = "accesstoken"
	paramChannelID    = "channelid"
	paramStartDate    = "startdate"
	paramEndDate      = "enddate"
	paramIntervalType = "intervaltype"
)

// IntervalType is the aggregation interval of a data series.
type IntervalType string

const (
	Interval6Min IntervalType = "6min"
	IntervalHour IntervalType = "hour"
	IntervalDay  IntervalType = "day"
)

// Valid reports whether i is an interval the API accepts.
func (i IntervalType) Valid() bool {
	switch i {
	case Interval6Min, IntervalHour, IntervalDay:
		return true
	default:
		return false
	}
}

// Option configures an API.
type Option func(*apiConfig)

type apiConfig struct {
	baseURL string
}

// WithBaseURL overrides DefaultBaseURL, e.g. for a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *apiConfig) {
		c.baseURL = baseURL
	}
}

// API builds requests for the Eliq Online endpoints. Sending them is up to the
// caller; decode the bodies with DecodeDataNow and DecodeData.
type API struct {
	tools   *Tools
	baseURL string
}

// NewAPI creates an API for one access token.
func NewAPI(accessToken string, opts ...Option) *API {
	cfg := &apiConfig{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &API{
		tools:   NewTools(accessToken),
		baseURL: strings.TrimSuffix(cfg.baseURL, "/"),
	}
}

// Tools returns the credential holder backing this API.
func (a *API) Tools() *Tools {
	return a.tools
}

// DataNowRequest builds the request for the latest power reading.
// A channelID of 0 selects the account's default channel.
func (a *API) DataNowRequest(ctx context.Context, channelID int) (*http.Request, error) {
	params := url.Values{}
	setChannel(params, channelID)

	return a.newRequest(ctx, "datanow", params)
}

// DataRequest builds the request for the series between start and end,
// aggregated by interval. A channelID of 0 selects the default channel.
func (a *API) DataRequest(ctx context.Context, start, end time.Time, interval IntervalType, channelID int) (*http.Request, error) {
	if !start.Before(end) {
		return nil, errors.New("start must be before end")
	}
	if !interval.Valid() {
		return nil, fmt.Errorf("unsupported interval type: %q", interval)
	}

	params := url.Values{}
	params.Set(paramStartDate, start.Format(DateLayout))
	params.Set(paramEndDate, end.Format(DateLayout))
	params.Set(paramIntervalType, string(interval))
	setChannel(params, channelID)

	return a.newRequest(ctx, "data", params)
}

func (a *API) newRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	reqURL, err := url.Parse(a.baseURL + "/" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params.Set(paramAccessToken, a.tools.AccessToken())
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func setChannel(params url.Values, channelID int) {
	if channelID != 0 {
		params.Set(paramChannelID, strconv.Itoa(channelID))
	}
}
