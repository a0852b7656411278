// Package store persists lightweight UI state between runs: recently viewed
// events, favorites, the user profile and the tickets-view preferences. Seat
// inventories and orders are never written here.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"eventpass-tui/model"
)

const maxRecentEvents = 8

type RecentEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type eventHistory struct {
	Events []RecentEvent `json:"events"`
}

type favoriteSet struct {
	EventIDs []string `json:"event_ids"`
}

// TicketPrefs captures the tickets-view controls.
type TicketPrefs struct {
	Status        string `json:"status"`
	SortAscending bool   `json:"sort_ascending"`
}

func LoadRecentEvents() ([]RecentEvent, error) {
	path, err := configPath("history.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history eventHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid event history format")
	}
	return history.Events, nil
}

// RememberEvent moves the event to the front of the recents list, dropping
// duplicates and anything beyond the cap.
func RememberEvent(ev model.Event) error {
	history, _ := LoadRecentEvents()
	next := []RecentEvent{{ID: ev.Id, Title: ev.Title}}

	for _, existing := range history {
		if existing.ID == ev.Id && existing.ID != "" {
			continue
		}
		if existing.Title != "" && strings.EqualFold(existing.Title, ev.Title) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentEvents {
			break
		}
	}

	return writeJSON("history.json", eventHistory{Events: next})
}

// LoadFavorites returns the set of favorited event ids.
func LoadFavorites() (map[string]bool, error) {
	path, err := configPath("favorites.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, err
	}

	var favorites favoriteSet
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, errors.New("invalid favorites format")
	}
	result := make(map[string]bool, len(favorites.EventIDs))
	for _, id := range favorites.EventIDs {
		if id != "" {
			result[id] = true
		}
	}
	return result, nil
}

// SetFavorite marks or unmarks an event as a favorite.
func SetFavorite(eventID string, liked bool) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return errors.New("event id is required")
	}

	current, err := LoadFavorites()
	if err != nil {
		return err
	}
	if liked {
		current[eventID] = true
	} else {
		delete(current, eventID)
	}

	ids := make([]string, 0, len(current))
	for id := range current {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return writeJSON("favorites.json", favoriteSet{EventIDs: ids})
}

func LoadProfile() (model.Profile, error) {
	path, err := configPath("profile.json")
	if err != nil {
		return model.Profile{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Profile{}, nil
		}
		return model.Profile{}, err
	}

	var profile model.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.Profile{}, errors.New("invalid profile format")
	}
	return profile, nil
}

func SaveProfile(profile model.Profile) error {
	return writeJSON("profile.json", profile)
}

func LoadTicketPrefs() (TicketPrefs, error) {
	path, err := configPath("ticket_prefs.json")
	if err != nil {
		return TicketPrefs{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return TicketPrefs{}, nil
		}
		return TicketPrefs{}, err
	}

	var prefs TicketPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return TicketPrefs{}, errors.New("invalid ticket prefs format")
	}
	return prefs, nil
}

func SaveTicketPrefs(prefs TicketPrefs) error {
	return writeJSON("ticket_prefs.json", prefs)
}

func writeJSON(name string, value any) error {
	path, err := configPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "eventpass-tui", name), nil
}
