package trivia

import (
	"errors"
	"strings"
	"testing"
)

func TestDeepLinkRoundTrip(t *testing.T) {
	game := finishedGame()
	game.CreatedAt = fixedNow()
	blob, err := EncodeGame(game)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.ContainsAny(blob, "+/=") {
		t.Fatalf("expected url-safe blob, got %q", blob)
	}
	decoded, err := DecodeGame(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Players[0].Name != "Alice" || len(decoded.History) != 1 || !decoded.CreatedAt.Equal(game.CreatedAt) {
		t.Fatalf("unexpected decoded game %#v", decoded)
	}
}

func TestDecodeGameMalformed(t *testing.T) {
	for _, blob := range []string{"", "%%%", "bm90IGpzb24", "e30"} {
		if _, err := DecodeGame(blob); !errors.Is(err, ErrMalformedGame) {
			t.Fatalf("%q: expected malformed game error, got %v", blob, err)
		}
	}
}
