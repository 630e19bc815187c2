package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error     string   `json:"error"`
	Timestamp DateTime `json:"timestamp"`
}

// DateTime is a time that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// Now returns the current time as a DateTime.
func Now() DateTime {
	return DateTime(time.Now())
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
