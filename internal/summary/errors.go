package summary

import "errors"

// ErrInvalidPeriod rejects anything other than "day" or "week".
var ErrInvalidPeriod = errors.New("period must be day or week")
