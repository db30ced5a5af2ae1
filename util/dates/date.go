// calendar dates serialized as date-only ISO text
package dates

import (
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar date without a time of day or a time zone. It serializes
// to JSON as a quoted "YYYY-MM-DD" string.
type Date struct {
	time.Time
}

// Parse returns the Date represented by the given "YYYY-MM-DD" string
func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, &ErrInvalidDate{s}
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", d.Format(layout))), nil
}

// accepts both plain calendar dates and date-time strings with a calendar date
// prefix, since records written by older versions carry the latter
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if len(s) > len(layout) {
		s = s[:len(layout)]
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return &ErrInvalidDate{s}
	}
	d.Time = t
	return nil
}

type ErrInvalidDate struct {
	Value	string
}

func (e *ErrInvalidDate) Error() string {
	return fmt.Sprintf("\"%s\" is not a valid YYYY-MM-DD date", e.Value)
}
