package request

import (
	"net/url"
	"strings"
	"time"
)

// Default search window spans effectively all time.
var (
	DefaultStartDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	DefaultEndDate   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

type SessionFilters struct {
	Title     string
	Genres    []string
	AgeRating string
	StartDate time.Time
	EndDate   time.Time
}

// ParseSessionFilters reads the query parameters of GET /api/sessions.
// Genres arrive as one comma-separated parameter; dates accept RFC3339 or
// plain YYYY-MM-DD. Unparseable dates fall back to the defaults.
func ParseSessionFilters(values url.Values) SessionFilters {
	filters := SessionFilters{
		Title:     values.Get("title"),
		AgeRating: values.Get("age_rating"),
		StartDate: DefaultStartDate,
		EndDate:   DefaultEndDate,
	}

	if raw := values.Get("genres"); raw != "" {
		for _, genre := range strings.Split(raw, ",") {
			if genre = strings.TrimSpace(genre); genre != "" {
				filters.Genres = append(filters.Genres, genre)
			}
		}
	}

	if t, ok := parseDate(values.Get("start_date")); ok {
		filters.StartDate = t
	}
	if t, ok := parseDate(values.Get("end_date")); ok {
		filters.EndDate = t
	}

	return filters
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
