// Package input turns raw USB HID keyboard usage IDs into abstract
// keyboard inputs for the game engines.
package input

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// KeyCode is a USB HID keyboard usage ID (usage page 0x07).
type KeyCode uint8

// Usage IDs recognised by the decoder.
const (
	KeyDigit1 KeyCode = 0x1E // Row digits 1..9 are contiguous
	KeyDigit9 KeyCode = 0x26
	KeyEnter  KeyCode = 0x28

	KeyRight KeyCode = 0x4F
	KeyLeft  KeyCode = 0x50
	KeyDown  KeyCode = 0x51
	KeyUp    KeyCode = 0x52

	KeyKeypadEnter KeyCode = 0x58
	KeyKeypad1     KeyCode = 0x59 // Keypad digits 1..9 are contiguous
	KeyKeypad9     KeyCode = 0x61
)

// numpadToGrid flips the keypad vertically: the keypad's 1 sits bottom-left,
// the game grid's 1 sits top-left.
var numpadToGrid = [10]uint8{0, 7, 8, 9, 4, 5, 6, 1, 2, 3}

// NumpadToGrid converts a physical keypad digit into the logical grid
// position. Digits outside 1..9 are returned unchanged.
func NumpadToGrid(n uint8) uint8 {
	if n < 1 || n > 9 {
		return n
	}
	return numpadToGrid[n]
}

// Key describes one entry of the decoder table.
type Key struct {
	Code  KeyCode
	Name  string
	Input core.KeyboardInput
}

var table = buildTable()

func buildTable() map[KeyCode]Key {
	t := make(map[KeyCode]Key, 24)

	for n := uint8(1); n <= 9; n++ {
		code := KeyKeypad1 + KeyCode(n-1)
		t[code] = Key{Code: code, Name: fmt.Sprintf("kp%d", n), Input: core.Numpad(NumpadToGrid(n))}

		code = KeyDigit1 + KeyCode(n-1)
		t[code] = Key{Code: code, Name: strconv.Itoa(int(n)), Input: core.Number(n)}
	}

	t[KeyUp] = Key{Code: KeyUp, Name: "up", Input: core.ArrowUp}
	t[KeyDown] = Key{Code: KeyDown, Name: "down", Input: core.ArrowDown}
	t[KeyLeft] = Key{Code: KeyLeft, Name: "left", Input: core.ArrowLeft}
	t[KeyRight] = Key{Code: KeyRight, Name: "right", Input: core.ArrowRight}
	t[KeyEnter] = Key{Code: KeyEnter, Name: "enter", Input: core.Enter}
	t[KeyKeypadEnter] = Key{Code: KeyKeypadEnter, Name: "kpenter", Input: core.Enter}

	return t
}

// Decode maps a usage ID to a keyboard input.
// Unrecognised codes return ok=false; that is not an error.
func Decode(code KeyCode) (core.KeyboardInput, bool) {
	k, ok := table[code]
	if !ok {
		return core.KeyboardInput{}, false
	}
	return k.Input, true
}

// Keys returns the decoder table sorted by usage ID.
func Keys() []Key {
	keys := make([]Key, 0, len(table))
	for _, k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Code < keys[j].Code
	})
	return keys
}

// ParseKey resolves a key given by table name ("kp5", "5", "enter") or
// by usage ID in hex ("0x5D") or decimal.
func ParseKey(s string) (KeyCode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range table {
		if k.Name == name {
			return k.Code, nil
		}
	}

	v, err := strconv.ParseUint(name, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown key %q", s)
	}
	return KeyCode(v), nil
}
