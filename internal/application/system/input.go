package system

// InputState is the key snapshot for one frame
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
	Shoot bool
}

// Horizontal returns +1 for right, -1 for left and 0 for neither.
// Right wins when both are held.
func (in InputState) Horizontal() int {
	switch {
	case in.Right:
		return 1
	case in.Left:
		return -1
	}
	return 0
}

// Vertical returns -1 for up, +1 for down and 0 for neither
func (in InputState) Vertical() int {
	switch {
	case in.Up:
		return -1
	case in.Down:
		return 1
	}
	return 0
}
