package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message used for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal failures from clients.
	DefaultErrorMessage = "Something went wrong, please try again later"

	// InternalServerErrorCode marks unexpected server-side failures.
	InternalServerErrorCode = 500

	// DateFormat is the wire format for date-only values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
