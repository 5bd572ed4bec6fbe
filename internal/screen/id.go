package screen

import (
	"fmt"
	"strings"
)

// ID identifies one kind of screen. The set is closed; it is used as the
// registration key and as command payload, never for type dispatch.
type ID int

const (
	Loading ID = iota
	Menu
	Settings
	Help
	About
	Play
	Pause
	GameOver
	Winning
)

var idNames = [...]string{
	Loading:  "loading",
	Menu:     "menu",
	Settings: "settings",
	Help:     "help",
	About:    "about",
	Play:     "play",
	Pause:    "pause",
	GameOver: "game_over",
	Winning:  "winning",
}

// AllIDs returns every screen identity in declaration order.
func AllIDs() []ID {
	ids := make([]ID, len(idNames))
	for i := range idNames {
		ids[i] = ID(i)
	}
	return ids
}

// String returns the stable lowercase name of the identity.
func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return fmt.Sprintf("screen(%d)", int(id))
	}
	return idNames[id]
}

// ParseID resolves a name such as "menu" or "game-over" to an identity.
func ParseID(name string) (ID, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range idNames {
		if n == normalized {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("screen: unknown screen %q", name)
}
