package domain

import (
	"strings"
	"time"
)

// DisplayFormat is how timestamps are shown in chat replies.
const DisplayFormat = "02/01/2006 15:04"

// timestampFormats are the layouts the backend is known to send.
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is used to parse the date-times sent by the backend, which are not always RFC 3339.
type Timestamp time.Time

func (t *Timestamp) UnmarshalJSON(bytes []byte) error {
	if string(bytes) == "null" {
		return nil
	}
	s := strings.ReplaceAll(string(bytes), "\"", "")
	if s == "" {
		return nil
	}
	var lastErr error
	for _, layout := range timestampFormats {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = Timestamp(parsed)
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return "-"
	}
	return time.Time(t).Format(DisplayFormat)
}
