package eliqonline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// DataNow is the latest power reading of a channel.
type DataNow struct {
	ChannelID   int       `json:"channel_id"`
	CreatedDate time.Time `json:"created_date"`
	// Power in watts, nil if the API did not report it.
	Power *float64 `json:"power"`
}

// Data is an aggregated series of readings.
type Data struct {
	ChannelID    int          `json:"channel_id"`
	StartDate    *time.Time   `json:"start_date"`
	EndDate      *time.Time   `json:"end_date"`
	IntervalType IntervalType `json:"interval_type"`
	Points       []DataPoint  `json:"points"`
}

// DataPoint is one interval of a Data series. Measurements the meter did not
// deliver for the interval are nil.
type DataPoint struct {
	AvgPower  *float64  `json:"avg_power"`  // W
	Energy    *float64  `json:"energy"`     // Wh
	TempOut   *float64  `json:"temp_out"`   // °C
	TimeStart time.Time `json:"time_start"`
	TimeEnd   time.Time `json:"time_end"`
}

// Raw response shapes, field values kept as text until converted.

type rawDataNow struct {
	ChannelID   field `json:"channelid"`
	CreatedDate field `json:"createddate"`
	Power       field `json:"power"`
}

type rawData struct {
	ChannelID    field          `json:"channelid"`
	StartDate    field          `json:"startdate"`
	EndDate      field          `json:"enddate"`
	IntervalType string         `json:"intervaltype"`
	Data         []rawDataPoint `json:"data"`
}

type rawDataPoint struct {
	AvgPower  field `json:"avgpower"`
	Energy    field `json:"energy"`
	TempOut   field `json:"temp_out"`
	TimeStart field `json:"time_start"`
	TimeEnd   field `json:"time_end"`
}

// field is a scalar from a response body: a JSON string, the literal text of
// a JSON number, or absent (null or missing).
type field struct {
	text *string
}

var _ json.Unmarshaler = (*field)(nil)

func (f *field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		f.text = nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.text = &s
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		s := string(b)
		f.text = &s
	default:
		return fmt.Errorf("unexpected JSON value %s for scalar field", b)
	}
	return nil
}

// DecodeDataNow decodes a datanow response body.
func DecodeDataNow(r io.Reader) (*DataNow, error) {
	var raw rawDataNow
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding datanow response: %w", err)
	}

	channel, err := channelID(raw.ChannelID)
	if err != nil {
		return nil, err
	}
	created, err := requireDate("createddate", raw.CreatedDate)
	if err != nil {
		return nil, err
	}
	power, err := MaybeToFloat(raw.Power.text)
	if err != nil {
		return nil, fmt.Errorf("power: %w", err)
	}

	return &DataNow{
		ChannelID:   channel,
		CreatedDate: created,
		Power:       power,
	}, nil
}

// DecodeData decodes a data response body.
func DecodeData(r io.Reader) (*Data, error) {
	var raw rawData
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding data response: %w", err)
	}

	channel, err := channelID(raw.ChannelID)
	if err != nil {
		return nil, err
	}
	start, err := MaybeToDate(raw.StartDate.text)
	if err != nil {
		return nil, fmt.Errorf("startdate: %w", err)
	}
	end, err := MaybeToDate(raw.EndDate.text)
	if err != nil {
		return nil, fmt.Errorf("enddate: %w", err)
	}

	data := &Data{
		ChannelID:    channel,
		StartDate:    start,
		EndDate:      end,
		IntervalType: IntervalType(raw.IntervalType),
		Points:       make([]DataPoint, 0, len(raw.Data)),
	}

	for i, rp := range raw.Data {
		p, err := rp.convert()
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}
		data.Points = append(data.Points, p)
	}

	return data, nil
}

func (rp rawDataPoint) convert() (DataPoint, error) {
	var p DataPoint
	var err error

	if p.AvgPower, err = MaybeToFloat(rp.AvgPower.text); err != nil {
		return p, fmt.Errorf("avgpower: %w", err)
	}
	if p.Energy, err = MaybeToFloat(rp.Energy.text); err != nil {
		return p, fmt.Errorf("energy: %w", err)
	}
	if p.TempOut, err = MaybeToFloat(rp.TempOut.text); err != nil {
		return p, fmt.Errorf("temp_out: %w", err)
	}
	if p.TimeStart, err = requireDate("time_start", rp.TimeStart); err != nil {
		return p, err
	}
	if p.TimeEnd, err = requireDate("time_end", rp.TimeEnd); err != nil {
		return p, err
	}

	return p, nil
}

// channelID converts the channelid field, which the API sends as a number or
// a string. An absent channel id is 0.
func channelID(f field) (int, error) {
	if f.text == nil {
		return 0, nil
	}

	id, err := strconv.Atoi(*f.text)
	if err != nil {
		return 0, fmt.Errorf("channelid: %w", &FormatError{Kind: "integer", Value: *f.text, Err: errors.Unwrap(err)})
	}
	return id, nil
}

// requireDate converts a date field the response must carry.
func requireDate(name string, f field) (time.Time, error) {
	if f.text == nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, &FormatError{Kind: "date", Err: errors.New("missing")})
	}

	t, err := ToDate(*f.text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
