package pairing

import (
	"fmt"
	"time"
)

type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// Seasons lists every season in display order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// CurrentSeason buckets the given date into a season: March-May is Spring,
// June-August is Summer, September-November is Autumn, the rest is Winter.
func CurrentSeason(now time.Time) Season {
	switch now.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// ParseSeason validates a user-selected season override.
func ParseSeason(value string) (Season, error) {
	for _, s := range Seasons {
		if string(s) == value {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown season %q", value)
}
