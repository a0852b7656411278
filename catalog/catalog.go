// Package catalog holds the in-memory event and ticket data the application
// renders from. There is no backend: the catalog is built once at load time
// and read-only thereafter.
package catalog

import (
	"errors"
	"sort"
	"strings"
	"time"

	"eventpass-tui/model"
)

// ErrEventNotFound is returned when an event id has no catalog entry. Callers
// must handle it before constructing a seat-selection session.
var ErrEventNotFound = errors.New("event not found")

var events = []model.Event{
	{
		Id:             "1",
		Title:          "Summer Music Festival",
		Description:    "Three stages, forty artists, one unforgettable weekend under the open sky.",
		Date:           time.Date(2026, time.July, 18, 16, 0, 0, 0, time.UTC),
		Location:       "Golden Gate Park, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/summer-music-festival.jpg",
		Price:          89,
		Category:       "Music",
		Organizer:      "LiveWave Productions",
		Featured:       true,
		Seats:          5000,
		AvailableSeats: 2134,
	},
	{
		Id:             "2",
		Title:          "Tech Innovation Summit",
		Description:    "Keynotes and hands-on labs with the teams building next year's platforms.",
		Date:           time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC),
		Location:       "Moscone Center, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/tech-innovation-summit.jpg",
		Price:          299,
		Category:       "Technology",
		Organizer:      "FutureStack",
		Featured:       true,
		Seats:          1200,
		AvailableSeats: 318,
	},
	{
		Id:             "3",
		Title:          "Championship Finals",
		Description:    "The two best teams of the season face off for the title.",
		Date:           time.Date(2026, time.June, 27, 19, 30, 0, 0, time.UTC),
		Location:       "Chase Center, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/championship-finals.jpg",
		Price:          150,
		Category:       "Sports",
		Organizer:      "Bay Area League",
		Featured:       false,
		Seats:          18000,
		AvailableSeats: 742,
	},
	{
		Id:             "4",
		Title:          "Modern Art Exhibition",
		Description:    "A guided evening through contemporary installations and their makers.",
		Date:           time.Date(2026, time.August, 5, 18, 0, 0, 0, time.UTC),
		Location:       "SFMOMA, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/modern-art-exhibition.jpg",
		Price:          45,
		Category:       "Art",
		Organizer:      "Gallery Nights",
		Featured:       false,
		Seats:          300,
		AvailableSeats: 187,
	},
	{
		Id:             "5",
		Title:          "Street Food Carnival",
		Description:    "Fifty vendors, live cooking battles and tasting passes all afternoon.",
		Date:           time.Date(2026, time.July, 4, 12, 0, 0, 0, time.UTC),
		Location:       "Pier 39, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/street-food-carnival.jpg",
		Price:          25,
		Category:       "Food",
		Organizer:      "Taste Collective",
		Featured:       true,
		Seats:          2000,
		AvailableSeats: 1553,
	},
	{
		Id:             "6",
		Title:          "Stand-up Comedy Night",
		Description:    "Five headliners, no phones, two-drink minimum.",
		Date:           time.Date(2026, time.June, 20, 21, 0, 0, 0, time.UTC),
		Location:       "The Punchline, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/standup-comedy-night.jpg",
		Price:          35,
		Category:       "Comedy",
		Organizer:      "Punchline Presents",
		Featured:       false,
		Seats:          220,
		AvailableSeats: 41,
	},
	{
		Id:             "7",
		Title:          "Jazz at the Bay",
		Description:    "An open-air quartet series as the sun goes down over the water.",
		Date:           time.Date(2026, time.August, 22, 19, 0, 0, 0, time.UTC),
		Location:       "Aquatic Park, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/jazz-at-the-bay.jpg",
		Price:          55,
		Category:       "Music",
		Organizer:      "Bayside Sessions",
		Featured:       false,
		Seats:          800,
		AvailableSeats: 659,
	},
	{
		Id:             "8",
		Title:          "Marathon Expo & Run",
		Description:    "Expo on Saturday, the 42k across the bridge on Sunday morning.",
		Date:           time.Date(2026, time.October, 11, 7, 0, 0, 0, time.UTC),
		Location:       "Embarcadero, San Francisco",
		ImageUrl:       "https://images.eventpass.dev/marathon-expo-run.jpg",
		Price:          75,
		Category:       "Sports",
		Organizer:      "Golden City Runners",
		Featured:       false,
		Seats:          10000,
		AvailableSeats: 4890,
	},
}

// Events returns every event in catalog order.
func Events() []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)
	return out
}

// FeaturedEvents returns the events flagged for the home view.
func FeaturedEvents() []model.Event {
	var out []model.Event
	for _, ev := range events {
		if ev.Featured {
			out = append(out, ev)
		}
	}
	return out
}

// Categories returns the distinct event categories, sorted.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, ev := range events {
		if !seen[ev.Category] {
			seen[ev.Category] = true
			out = append(out, ev.Category)
		}
	}
	sort.Strings(out)
	return out
}

// EventsByCategory filters the catalog by category, case-insensitively. An
// empty category returns everything.
func EventsByCategory(category string) []model.Event {
	category = strings.TrimSpace(category)
	if category == "" {
		return Events()
	}
	var out []model.Event
	for _, ev := range events {
		if strings.EqualFold(ev.Category, category) {
			out = append(out, ev)
		}
	}
	return out
}

// FindEvent looks up an event by id.
func FindEvent(id string) (model.Event, error) {
	for _, ev := range events {
		if ev.Id == id {
			return ev, nil
		}
	}
	return model.Event{}, ErrEventNotFound
}
