package playback

// KeyEvent is a key press delivered by a host. Key holds the produced text,
// e.g. "c", "C" or " ".
type KeyEvent struct {
	Key       string
	Composing bool
}

// Command is a controller action bound to a key.
type Command int

const (
	CommandNone Command = iota
	CommandClear
	CommandTogglePause
	CommandRebuild
)

// CommandFor maps a key event onto a command. Events that are part of an
// IME composition map to CommandNone.
func CommandFor(ev KeyEvent) Command {
	if ev.Composing {
		return CommandNone
	}
	switch ev.Key {
	case "c", "C":
		return CommandClear
	case " ":
		return CommandTogglePause
	case "r", "R":
		return CommandRebuild
	}
	return CommandNone
}

// HandleKey runs the command bound to ev and reports whether one ran.
func (c *Controller) HandleKey(ev KeyEvent) bool {
	switch CommandFor(ev) {
	case CommandClear:
		c.ClearCells()
	case CommandTogglePause:
		c.TogglePause()
	case CommandRebuild:
		c.Rebuild()
	default:
		return false
	}
	return true
}
