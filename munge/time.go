package munge

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ToTime converts a timespec from a query term into a time.Time
// object. Integers are Unix epoch seconds. Strings are tried as
// RFC3339 first, since that is the common case, then handed to the
// dateparse library.
func ToTime(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case int:
		return time.Unix(int64(t), 0), nil
	case int64:
		return time.Unix(t, 0), nil
	case float64:
		if t != float64(int64(t)) {
			return time.Time{}, fmt.Errorf("could not convert to time.Time: the provided time %v is a decimal number", t)
		}
		return time.Unix(int64(t), 0), nil
	case string:
		tm, err := time.Parse(time.RFC3339, t)
		if err != nil {
			tm, err = dateparse.ParseAny(t)
			if err != nil {
				err = fmt.Errorf("could not parse %v into a time.Time object: %v", t, err)
			}
		}
		return tm, err
	default:
		return time.Time{}, fmt.Errorf("%v is not a valid time.Time type. Valid time.Time types are time.Time, integers, and strings", v)
	}
}
