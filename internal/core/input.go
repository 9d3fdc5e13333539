package core

// Input is the player intent consumed by one logic tick.
type Input struct {
	Direction    Direction
	HasDirection bool
	Quit         bool
}

// DirectionInput returns an input carrying only a heading change.
func DirectionInput(d Direction) Input {
	return Input{Direction: d, HasDirection: true}
}

// QuitInput returns an input that ends the session.
func QuitInput() Input {
	return Input{Quit: true}
}

// InputSource is the keyboard side of a frontend.
// Poll drains pending events into the source's state; the accessors only read it.
type InputSource interface {
	Poll()
	QuitRequested() bool
	LastDirection() (Direction, bool)
}

// Renderer is the drawing side of a frontend.
type Renderer interface {
	Clear()
	DrawCell(pos Position, c Color)
	Present()
	SetTitle(title string)
}
