package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpass-tui/model"
)

func TestFindEvent(t *testing.T) {
	ev, err := FindEvent("2")
	require.NoError(t, err)
	assert.Equal(t, "Tech Innovation Summit", ev.Title)

	_, err = FindEvent("nope")
	assert.True(t, errors.Is(err, ErrEventNotFound))
}

func TestEventsByCategory(t *testing.T) {
	music := EventsByCategory("music")
	require.NotEmpty(t, music)
	for _, ev := range music {
		assert.Equal(t, "Music", ev.Category)
	}

	all := EventsByCategory("")
	assert.Equal(t, Events(), all)

	assert.Empty(t, EventsByCategory("Opera"))
}

func TestCategoriesSortedAndDistinct(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	seen := map[string]bool{}
	for i, cat := range cats {
		assert.False(t, seen[cat], "duplicate category %s", cat)
		seen[cat] = true
		if i > 0 {
			assert.Less(t, cats[i-1], cat)
		}
	}
}

func TestFeaturedEvents(t *testing.T) {
	for _, ev := range FeaturedEvents() {
		assert.True(t, ev.Featured, "event %s", ev.Id)
	}
}

func TestSeedTicketsCopies(t *testing.T) {
	first := SeedTickets()
	require.NotEmpty(t, first)

	first[0].Status = model.TicketCancelled
	second := SeedTickets()
	assert.NotEqual(t, first[0].Status, second[0].Status, "callers must not share backing array")
}
