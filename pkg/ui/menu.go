package ui

// Menu is a vertical list of options with one selected.
type Menu struct {
	Options  []string
	Selected int
}

// Move shifts the selection by delta, wrapping at both ends.
func (m *Menu) Move(delta int) {
	n := len(m.Options)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// Current returns the selected option, or "" for an empty menu.
func (m *Menu) Current() string {
	if len(m.Options) == 0 {
		return ""
	}
	return m.Options[m.Selected]
}
