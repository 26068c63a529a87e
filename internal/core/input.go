package core

import (
	"fmt"
	"strings"
)

// Action represents a decoded player command, abstracted from physical keys.
// The engine only ever sees these, never raw key states.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // Left, H, A
	ActionMoveRight          // Right, L, D
	ActionRotateCW           // Up, X, K
	ActionRotateCCW          // Z
	ActionSoftDrop           // Down, J, S - held soft drop
	ActionSoftDropOff        // Soft drop released
	ActionHardDrop           // Space
	ActionPause              // P, Escape
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionRotateCW:    "rotate_cw",
	ActionRotateCCW:   "rotate_ccw",
	ActionSoftDrop:    "soft_drop",
	ActionSoftDropOff: "soft_drop_off",
	ActionHardDrop:    "hard_drop",
	ActionPause:       "pause",
	ActionRestart:     "restart",
	ActionQuit:        "quit",
}

// String returns the snake_case name used in replay scripts.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction converts a name produced by Action.String back into an Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// MarshalText implements encoding.TextMarshaler so actions serialize by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
