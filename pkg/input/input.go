package input

import "strings"

// Snapshot is the key state sampled for one frame.
type Snapshot struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Restart bool
}

// Any reports whether any key is down.
func (s Snapshot) Any() bool {
	return s.Forward || s.Back || s.Left || s.Right || s.Restart
}

// Frame pairs the held keys with the keys that went down this frame.
type Frame struct {
	Held    Snapshot
	Pressed Snapshot
}

var keyNames = map[string]func(*Snapshot){
	"forward":    func(s *Snapshot) { s.Forward = true },
	"up":         func(s *Snapshot) { s.Forward = true },
	"arrowup":    func(s *Snapshot) { s.Forward = true },
	"w":          func(s *Snapshot) { s.Forward = true },
	"back":       func(s *Snapshot) { s.Back = true },
	"down":       func(s *Snapshot) { s.Back = true },
	"arrowdown":  func(s *Snapshot) { s.Back = true },
	"s":          func(s *Snapshot) { s.Back = true },
	"left":       func(s *Snapshot) { s.Left = true },
	"arrowleft":  func(s *Snapshot) { s.Left = true },
	"a":          func(s *Snapshot) { s.Left = true },
	"right":      func(s *Snapshot) { s.Right = true },
	"arrowright": func(s *Snapshot) { s.Right = true },
	"d":          func(s *Snapshot) { s.Right = true },
	"restart":    func(s *Snapshot) { s.Restart = true },
	"space":      func(s *Snapshot) { s.Restart = true },
	"r":          func(s *Snapshot) { s.Restart = true },
}

// FromNames builds a snapshot from named key states. Names are matched
// case-insensitively; unknown names and released keys are ignored.
func FromNames(keys map[string]bool) Snapshot {
	var s Snapshot
	for name, down := range keys {
		if !down {
			continue
		}
		if set, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			set(&s)
		}
	}
	return s
}

// Edges derives just-pressed keys by comparing consecutive snapshots.
type Edges struct {
	prev Snapshot
}

// Next records s and returns it together with the keys that were up in the
// previous snapshot.
func (e *Edges) Next(s Snapshot) Frame {
	pressed := Snapshot{
		Forward: s.Forward && !e.prev.Forward,
		Back:    s.Back && !e.prev.Back,
		Left:    s.Left && !e.prev.Left,
		Right:   s.Right && !e.prev.Right,
		Restart: s.Restart && !e.prev.Restart,
	}
	e.prev = s
	return Frame{Held: s, Pressed: pressed}
}

