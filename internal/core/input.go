package core

import "fmt"

// InputKind classifies a decoded keyboard event.
type InputKind int

const (
	InputNone   InputKind = iota
	InputNumpad           // Keypad digit, already remapped to the game grid
	InputNumber           // Digit on the number row
	InputArrowUp
	InputArrowDown
	InputArrowLeft
	InputArrowRight
	InputEnter
)

// KeyboardInput is an abstract input event produced by the input decoder.
// Digit is only meaningful for InputNumpad and InputNumber.
type KeyboardInput struct {
	Kind  InputKind
	Digit uint8
}

// Numpad creates a keypad digit input.
func Numpad(n uint8) KeyboardInput {
	return KeyboardInput{Kind: InputNumpad, Digit: n}
}

// Number creates a number-row digit input.
func Number(n uint8) KeyboardInput {
	return KeyboardInput{Kind: InputNumber, Digit: n}
}

// Convenience values for the non-digit inputs.
var (
	ArrowUp    = KeyboardInput{Kind: InputArrowUp}
	ArrowDown  = KeyboardInput{Kind: InputArrowDown}
	ArrowLeft  = KeyboardInput{Kind: InputArrowLeft}
	ArrowRight = KeyboardInput{Kind: InputArrowRight}
	Enter      = KeyboardInput{Kind: InputEnter}
)

// Position returns the board position 1..9 carried by a digit input.
// The second result is false for non-digit inputs and digits outside 1..9.
func (in KeyboardInput) Position() (uint8, bool) {
	if in.Kind != InputNumpad && in.Kind != InputNumber {
		return 0, false
	}
	if in.Digit < 1 || in.Digit > 9 {
		return 0, false
	}
	return in.Digit, true
}

// String returns a human-readable name for the input.
func (in KeyboardInput) String() string {
	switch in.Kind {
	case InputNumpad:
		return fmt.Sprintf("Numpad(%d)", in.Digit)
	case InputNumber:
		return fmt.Sprintf("Number(%d)", in.Digit)
	case InputArrowUp:
		return "ArrowUp"
	case InputArrowDown:
		return "ArrowDown"
	case InputArrowLeft:
		return "ArrowLeft"
	case InputArrowRight:
		return "ArrowRight"
	case InputEnter:
		return "Enter"
	default:
		return "None"
	}
}
