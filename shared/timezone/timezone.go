package timezone

import (
	"sync"
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"github.com/GioMjds/paynal-prajik/config"

	"github.com/rs/zerolog/log"
)

var (
	configured = sync.OnceValue(func() *time.Location {
		return resolve(config.Get().App.Timezone)
	})
	pinned atomic.Pointer[time.Location]
)

func resolve(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE is empty, business dates use UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown IANA timezone, business dates use UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("application timezone loaded")

	return loc
}

// Pin overrides the configured zone, e.g. to run date rules against a fixed property.
func Pin(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	pinned.Store(loc)

	return nil
}

// GetLocation is the property zone: the pinned one if set, otherwise APP_TIMEZONE.
func GetLocation() *time.Location {
	if loc := pinned.Load(); loc != nil {
		return loc
	}

	return configured()
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as a wall time at the property.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today is midnight of the current property day.
func Today() time.Time {
	return DateOf(Now())
}

// DateOf truncates t to midnight of the property day that contains it.
func DateOf(t time.Time) time.Time {
	year, month, day := ToAppTime(t).Date()

	return time.Date(year, month, day, 0, 0, 0, 0, GetLocation())
}
