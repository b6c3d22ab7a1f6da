package input

import (
	"testing"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/mailbox"
)

func TestNumpadRemapIsVerticalFlip(t *testing.T) {
	expected := map[uint8]uint8{
		1: 7, 2: 8, 3: 9,
		4: 4, 5: 5, 6: 6,
		7: 1, 8: 2, 9: 3,
	}

	for physical := uint8(1); physical <= 9; physical++ {
		logical := NumpadToGrid(physical)
		if logical != expected[physical] {
			t.Errorf("NumpadToGrid(%d) = %d, expected %d", physical, logical, expected[physical])
		}
		// A vertical flip is its own inverse
		if back := NumpadToGrid(logical); back != physical {
			t.Errorf("NumpadToGrid(NumpadToGrid(%d)) = %d", physical, back)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		code     KeyCode
		expected core.KeyboardInput
		ok       bool
	}{
		{"keypad 1 is grid 7", 0x59, core.Numpad(7), true},
		{"keypad 5 stays", 0x5D, core.Numpad(5), true},
		{"keypad 9 is grid 3", 0x61, core.Numpad(3), true},
		{"row digit 1", 0x1E, core.Number(1), true},
		{"row digit 9", 0x26, core.Number(9), true},
		{"enter", 0x28, core.Enter, true},
		{"keypad enter", 0x58, core.Enter, true},
		{"right", 0x4F, core.ArrowRight, true},
		{"left", 0x50, core.ArrowLeft, true},
		{"down", 0x51, core.ArrowDown, true},
		{"up", 0x52, core.ArrowUp, true},
		{"row digit 0 is unmapped", 0x27, core.KeyboardInput{}, false},
		{"keypad 0 is unmapped", 0x62, core.KeyboardInput{}, false},
		{"letter a is unmapped", 0x04, core.KeyboardInput{}, false},
		{"no event", 0x00, core.KeyboardInput{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := Decode(tc.code)
			if ok != tc.ok {
				t.Fatalf("Decode(0x%02X) ok = %v, expected %v", tc.code, ok, tc.ok)
			}
			if in != tc.expected {
				t.Errorf("Decode(0x%02X) = %v, expected %v", tc.code, in, tc.expected)
			}
		})
	}
}

func TestKeysSortedAndComplete(t *testing.T) {
	keys := Keys()
	if len(keys) != 24 {
		t.Fatalf("Keys() returned %d entries, expected 24", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1].Code >= keys[i].Code {
			t.Fatalf("Keys() not sorted at %d: 0x%02X >= 0x%02X", i, keys[i-1].Code, keys[i].Code)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in       string
		expected KeyCode
		wantErr  bool
	}{
		{"kp5", 0x5D, false},
		{"KP1", 0x59, false},
		{"5", 0x22, false},
		{"enter", 0x28, false},
		{"0x61", 0x61, false},
		{"0x4f", 0x4F, false},
		{"banana", 0, true},
		{"0x1FF", 0, true},
	}

	for _, tc := range tests {
		code, err := ParseKey(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseKey(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", tc.in, err)
			continue
		}
		if code != tc.expected {
			t.Errorf("ParseKey(%q) = 0x%02X, expected 0x%02X", tc.in, code, tc.expected)
		}
	}
}

func TestDecoderFeed(t *testing.T) {
	box := mailbox.New[core.KeyboardInput]()
	d := NewDecoder(box)

	if d.Feed(0x04) {
		t.Error("Feed accepted an unmapped code")
	}
	if box.HasValue() {
		t.Error("unmapped code reached the mailbox")
	}
	if d.Ignored() != 1 {
		t.Errorf("Ignored() = %d, expected 1", d.Ignored())
	}

	if !d.Feed(0x59) {
		t.Fatal("Feed rejected keypad 1")
	}
	in, ok := box.TryTake()
	if !ok || in != core.Numpad(7) {
		t.Errorf("mailbox holds %v (ok=%v), expected Numpad(7)", in, ok)
	}
}
