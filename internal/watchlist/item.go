// Package watchlist implements the persisted watchlist and its time-budget
// optimizer: value-ratio ranking, cumulative budget evaluation, and the
// drag-to-reorder session state machine.
package watchlist

import (
	"encoding/json"
	"strconv"
	"strings"
)

// defaultRuntimeMinutes is assumed when a runtime string carries no digits.
const defaultRuntimeMinutes = 120

// Item is one saved title. ID is the sole equality key within a watchlist.
type Item struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster"`
	Year   string `json:"year"`
	// Runtime is the free-form provider string, e.g. "136 min". Minutes are
	// extracted with ParseRuntimeMinutes; the raw value is kept for display.
	Runtime string `json:"runtime"`
	Rating  Rating `json:"rating"`
}

// Rating is a 0-10 scale rating. Persisted data may carry it as a JSON
// number or a numeric string ("8.7"); anything unparseable decodes to 0.
type Rating float64

func (r *Rating) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*r = Rating(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*r = Rating(f)
			return nil
		}
	}

	*r = 0
	return nil
}

// RuntimeMinutes returns the parsed runtime of the item in minutes.
func (i Item) RuntimeMinutes() int {
	return ParseRuntimeMinutes(i.Runtime)
}

// ValueRatio is the "quality per unit time" score: rating / (minutes/100).
// Higher is better. A non-positive runtime scores 0.
func (i Item) ValueRatio() float64 {
	minutes := i.RuntimeMinutes()
	if minutes <= 0 {
		return 0
	}
	return float64(i.Rating) / (float64(minutes) / 100)
}

// ParseRuntimeMinutes extracts a duration in minutes from a free-form runtime
// string. The first run of decimal digits wins ("136 min" -> 136); a string
// with no digits yields the 120 minute default.
func ParseRuntimeMinutes(runtime string) int {
	start := -1
	for idx, r := range runtime {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = idx
			}
			continue
		}
		if start >= 0 {
			minutes, _ := strconv.Atoi(runtime[start:idx])
			return minutes
		}
	}
	if start >= 0 {
		minutes, _ := strconv.Atoi(runtime[start:])
		return minutes
	}
	return defaultRuntimeMinutes
}
