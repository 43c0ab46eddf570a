package timezone

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hms/shared/constant"
)

// Date is a calendar day stored in a DATE column and rendered as 2006-01-02.
type Date struct {
	time.Time
}

// Clock is a time of day stored in a TIME column and rendered as 15:04.
type Clock struct {
	time.Time
}

func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(constant.DateOnlyFormat, strings.TrimSpace(value), GetLocation())
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", value, err)
	}

	return Date{t}, nil
}

func ParseClock(value string) (Clock, error) {
	value = strings.TrimSpace(value)

	for _, layout := range []string{constant.ClockFormat, time.TimeOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return Clock{t}, nil
		}
	}

	return Clock{}, fmt.Errorf("failed to parse time %q: expected HH:MM", value)
}

func (d Date) String() string {
	return d.Format(constant.DateOnlyFormat)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, GetLocation())

		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		d.Time = time.Time{}

		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(value string) error {
	if len(value) > len(constant.DateOnlyFormat) {
		value = value[:len(constant.DateOnlyFormat)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode date: %w", err)
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (c Clock) String() string {
	return c.Format(constant.ClockFormat)
}

func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}

func (c *Clock) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		c.Time = time.Date(0, 1, 1, v.Hour(), v.Minute(), 0, 0, time.UTC)

		return nil
	case string:
		return c.scanString(v)
	case []byte:
		return c.scanString(string(v))
	case nil:
		c.Time = time.Time{}

		return nil
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}
}

func (c *Clock) scanString(value string) error {
	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode time: %w", err)
	}

	return c.scanString(raw)
}
