package vergen

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrLocalTimezone is returned when local time is requested but the system's
// local timezone cannot be resolved. A build that asked for local timestamps
// must fail loudly rather than embed an ambiguous time.
var ErrLocalTimezone = errors.New("unable to resolve local timezone")

// sourceDateEpochEnv is the reproducible-builds convention for pinning the
// build timestamp: seconds since the Unix epoch.
// See https://reproducible-builds.org/specs/source-date-epoch/.
const sourceDateEpochEnv = "SOURCE_DATE_EPOCH"

// systemClock captures the timestamp snapshot for a generation run. It
// honors SOURCE_DATE_EPOCH when set, otherwise it reads the wall clock.
func systemClock(tz TimeZone) (time.Time, error) {
	now := time.Now()
	if epoch, ok := os.LookupEnv(sourceDateEpochEnv); ok {
		secs, err := strconv.ParseInt(epoch, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid %s %q: %w", sourceDateEpochEnv, epoch, err)
		}
		now = time.Unix(secs, 0)
	}

	if tz == TimeZoneLocal {
		loc, err := localLocation()
		if err != nil {
			return time.Time{}, err
		}
		return now.In(loc), nil
	}
	return now.UTC(), nil
}

// localLocation resolves the system's local timezone.
//
// The time package silently falls back to UTC when TZ names a zone it cannot
// load, which is exactly the ambiguity this package refuses to embed into a
// binary: a TZ value that does not resolve is reported as ErrLocalTimezone
// instead.
func localLocation() (*time.Location, error) {
	tz, ok := os.LookupEnv("TZ")
	if !ok || tz == "" || tz == "Local" {
		return time.Local, nil
	}
	// POSIX allows a leading colon before the zone name.
	loc, err := time.LoadLocation(strings.TrimPrefix(tz, ":"))
	if err != nil {
		return nil, fmt.Errorf("%w: TZ=%q: %v", ErrLocalTimezone, tz, err)
	}
	return loc, nil
}
