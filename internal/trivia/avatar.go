package trivia

import (
	"fmt"
	"strings"
)

// Avatar identifies one of the fixed player icons.
type Avatar string

const (
	AvatarGem       Avatar = "gem"
	AvatarGhost     Avatar = "ghost"
	AvatarCat       Avatar = "cat"
	AvatarDog       Avatar = "dog"
	AvatarBird      Avatar = "bird"
	AvatarBug       Avatar = "bug"
	AvatarFish      Avatar = "fish"
	AvatarCroissant Avatar = "croissant"
	AvatarPizza     Avatar = "pizza"
	AvatarRocket    Avatar = "rocket"
	AvatarPlane     Avatar = "plane"
	AvatarSkull     Avatar = "skull"
)

var avatarGlyphs = map[Avatar]string{
	AvatarGem:       "💎",
	AvatarGhost:     "👻",
	AvatarCat:       "🐱",
	AvatarDog:       "🐶",
	AvatarBird:      "🐦",
	AvatarBug:       "🐞",
	AvatarFish:      "🐟",
	AvatarCroissant: "🥐",
	AvatarPizza:     "🍕",
	AvatarRocket:    "🚀",
	AvatarPlane:     "✈️",
	AvatarSkull:     "💀",
}

// Avatars returns every avatar in display order.
func Avatars() []Avatar {
	return []Avatar{
		AvatarGem,
		AvatarGhost,
		AvatarCat,
		AvatarDog,
		AvatarBird,
		AvatarBug,
		AvatarFish,
		AvatarCroissant,
		AvatarPizza,
		AvatarRocket,
		AvatarPlane,
		AvatarSkull,
	}
}

// ParseAvatar resolves a key to an Avatar. Unknown keys are rejected.
func ParseAvatar(key string) (Avatar, error) {
	avatar := Avatar(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := avatarGlyphs[avatar]; !ok {
		return "", invalid("avatar", fmt.Errorf("%w: %q", ErrUnknownAvatar, key))
	}
	return avatar, nil
}

func (a Avatar) Valid() bool {
	_, ok := avatarGlyphs[a]
	return ok
}

// Glyph is the presentation asset for the avatar.
func (a Avatar) Glyph() string {
	return avatarGlyphs[a]
}

func (a Avatar) String() string {
	return string(a)
}
