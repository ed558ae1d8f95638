package types

// Edit is one change to the startup entries: a REG_SZ write, or a removal
// when Delete is set.
type Edit struct {
	Name   string
	Value  string
	Delete bool
}

// Entry is one startup entry as found in a single view.
type Entry struct {
	Name    string  `json:"name"`
	Command string  `json:"command"`
	Type    RegType `json:"-"`
	View    View    `json:"-"`
}
