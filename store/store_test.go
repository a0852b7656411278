package store

import (
	"testing"

	"eventpass-tui/model"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
}

func TestSetFavorite_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	favorites, err := LoadFavorites()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected no favorites, got %+v", favorites)
	}

	if err := SetFavorite("1", true); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := SetFavorite("5", true); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	favorites, err = LoadFavorites()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !favorites["1"] || !favorites["5"] {
		t.Fatalf("expected events to be favorited, got %+v", favorites)
	}

	if err := SetFavorite("1", false); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	favorites, err = LoadFavorites()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if favorites["1"] {
		t.Fatalf("expected event 1 unfavorited, got %+v", favorites)
	}
	if !favorites["5"] {
		t.Fatalf("expected event 5 favorited, got %+v", favorites)
	}
}

func TestSetFavorite_InvalidInput(t *testing.T) {
	setTestConfigDir(t)

	if err := SetFavorite("", true); err == nil {
		t.Fatal("expected error for empty event id")
	}
}

func TestRememberEvent_DedupesAndCaps(t *testing.T) {
	setTestConfigDir(t)

	for i := 0; i < 12; i++ {
		ev := model.Event{Id: string(rune('a' + i)), Title: "Event " + string(rune('A'+i))}
		if err := RememberEvent(ev); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	if err := RememberEvent(model.Event{Id: "a", Title: "Event A"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	recents, err := LoadRecentEvents()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(recents) > maxRecentEvents {
		t.Fatalf("expected at most %d recents, got %d", maxRecentEvents, len(recents))
	}
	if recents[0].ID != "a" {
		t.Fatalf("expected most recent event first, got %+v", recents[0])
	}
	for i := 1; i < len(recents); i++ {
		if recents[i].ID == "a" {
			t.Fatalf("expected no duplicate entries, got %+v", recents)
		}
	}
}

func TestProfile_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	profile, err := LoadProfile()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if profile != (model.Profile{}) {
		t.Fatalf("expected empty profile, got %+v", profile)
	}

	want := model.Profile{Name: "Alex Chen", Email: "alex@example.com"}
	if err := SaveProfile(want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	profile, err = LoadProfile()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if profile != want {
		t.Fatalf("expected %+v, got %+v", want, profile)
	}
}

func TestTicketPrefs_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	want := TicketPrefs{Status: "valid", SortAscending: true}
	if err := SaveTicketPrefs(want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	prefs, err := LoadTicketPrefs()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if prefs != want {
		t.Fatalf("expected %+v, got %+v", want, prefs)
	}
}
