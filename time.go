package heredity

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Time is a run timestamp as stored in the run table. The column holds unix
// seconds when written by a Store, but the cgo and pure Go drivers disagree
// on how they hand back timestamps written by other tools, so text is
// accepted too. Derived from
// https://github.com/mattn/go-sqlite3/issues/190#issuecomment-343341834
type Time time.Time

const sqliteTimeLayout = "2006-01-02 15:04:05"

func (t *Time) Scan(v interface{}) error {
	switch which := v.(type) {
	case int64:
		*t = Time(time.Unix(which, 0).UTC())
		return nil
	case time.Time:
		*t = Time(which.UTC())
		return nil
	case string:
		return t.parse(which)
	case []byte:
		return t.parse(string(which))
	}

	return fmt.Errorf("No appropriate type could be found to decode %v", v)
}

func (t *Time) parse(s string) error {
	vt, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		return err
	}
	*t = Time(vt)
	return nil
}

// Value writes unix seconds.
func (t Time) Value() (driver.Value, error) {
	return time.Time(t).Unix(), nil
}

func (t Time) String() string {
	return time.Time(t).Format(sqliteTimeLayout)
}
