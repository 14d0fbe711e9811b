package trivia

import (
	"errors"
	"fmt"
	"testing"
)

func TestRosterCapacity(t *testing.T) {
	for n := 1; n <= MaxPlayers; n++ {
		roster := NewRoster(0)
		for i := 0; i < n; i++ {
			if _, err := roster.Add(fmt.Sprintf("Player %d", i), AvatarCat); err != nil {
				t.Fatalf("n=%d: add %d: %v", n, i, err)
			}
		}
		if n < MaxPlayers {
			continue
		}
		_, err := roster.Add("One Too Many", AvatarDog)
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Fatalf("expected capacity error, got %v", err)
		}
		if roster.Len() != MaxPlayers {
			t.Fatalf("expected %d players, got %d", MaxPlayers, roster.Len())
		}
	}
}

func TestRosterRejectsDuplicateNames(t *testing.T) {
	roster := NewRoster(0)
	if _, err := roster.Add("Alice", AvatarGem); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := roster.Add("  aLiCe ", AvatarGhost)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Fatalf("expected validation error on name, got %#v", err)
	}
	if roster.Len() != 1 {
		t.Fatalf("expected roster to be unchanged, got %d players", roster.Len())
	}
}

func TestRosterAddValidation(t *testing.T) {
	tests := []struct {
		name   string
		player string
		avatar Avatar
		want   error
	}{
		{name: "blank", player: "   ", avatar: AvatarCat, want: ErrEmptyName},
		{name: "too long", player: "abcdefghijklmnopqrstu", avatar: AvatarCat, want: ErrNameTooLong},
		{name: "unknown avatar", player: "Bob", avatar: Avatar("unicorn"), want: ErrUnknownAvatar},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roster := NewRoster(0)
			_, err := roster.Add(tc.player, tc.avatar)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRosterAddTrimsAndZeroesScore(t *testing.T) {
	roster := NewRoster(0)
	roster.newID = func() string { return "p1" }
	player, err := roster.Add("  Ada  ", AvatarRocket)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if player.ID != "p1" || player.Name != "Ada" || player.Score != 0 || player.Avatar != AvatarRocket {
		t.Fatalf("unexpected player %#v", player)
	}
}

func TestRosterRemoveAndFreeze(t *testing.T) {
	roster := NewRoster(0)
	if _, err := roster.Freeze(); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected no players error, got %v", err)
	}
	a, _ := roster.Add("Alice", AvatarCat)
	b, _ := roster.Add("Bob", AvatarDog)
	if roster.Remove("missing") {
		t.Fatalf("expected unknown id to be ignored")
	}
	if !roster.Remove(a.ID) {
		t.Fatalf("expected remove to succeed")
	}
	frozen, err := roster.Freeze()
	if err != nil {
		t.Fatalf("freeze: %v", err)
	}
	if len(frozen) != 1 || frozen[0].ID != b.ID {
		t.Fatalf("unexpected frozen roster %#v", frozen)
	}
	frozen[0].Score = 99
	if roster.Players()[0].Score != 0 {
		t.Fatalf("expected frozen roster to be a copy")
	}
}

func TestParseAvatar(t *testing.T) {
	for _, a := range Avatars() {
		got, err := ParseAvatar(string(a))
		if err != nil || got != a {
			t.Fatalf("parse %q: got %q, %v", a, got, err)
		}
		if a.Glyph() == "" {
			t.Fatalf("expected glyph for %q", a)
		}
	}
	if _, err := ParseAvatar("unicorn"); !errors.Is(err, ErrUnknownAvatar) {
		t.Fatalf("expected unknown avatar error, got %v", err)
	}
}
