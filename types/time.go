package types

import "time"

// Time is a wall-clock instant split into whole seconds since the Unix epoch
// and the microseconds within that second.
type Time struct {
	seconds      Integer
	microseconds Integer
}

// NewTime pairs seconds and microseconds.
func NewTime(seconds, microseconds Integer) Time {
	return Time{seconds: seconds, microseconds: microseconds}
}

// TimeFromInt64 builds a Time from native integers.
func TimeFromInt64(seconds, microseconds int64) Time {
	return Time{seconds: IntegerFromInt64(seconds), microseconds: IntegerFromInt64(microseconds)}
}

// TimeOf converts a time.Time, truncating to microsecond precision.
func TimeOf(t time.Time) Time {
	return TimeFromInt64(t.Unix(), int64(t.Nanosecond()/1000))
}

// Seconds returns the whole seconds since the Unix epoch.
func (t Time) Seconds() Integer {
	return t.seconds
}

// Microseconds returns the microseconds within the second.
func (t Time) Microseconds() Integer {
	return t.microseconds
}

// StdTime converts to a UTC time.Time.
func (t Time) StdTime() (time.Time, error) {
	sec, err := t.seconds.Int64()
	if err != nil {
		return time.Time{}, err
	}
	usec, err := t.microseconds.Int64()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, usec*int64(time.Microsecond)).UTC(), nil
}
