package session

import (
	"fmt"

	"github.com/san-kum/wavefront/internal/plot"
)

// Op enumerates operator commands, independent of any input device.
type Op int

const (
	ChangeStyle Op = iota
	AdjustSpeed
	Reset
	TogglePause
	ToggleProjection
	HistoryBack
	HistoryForward
)

var opNames = [...]string{
	"change_style", "adjust_speed", "reset", "toggle_pause",
	"toggle_projection", "history_back", "history_forward",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("op(%d)", int(o))
	}
	return opNames[o]
}

// Command is one operator request. Style is read by ChangeStyle and Sign
// (+1 or -1) by AdjustSpeed.
type Command struct {
	Op    Op
	Style plot.Style
	Sign  int
}

func SetStyle(s plot.Style) Command { return Command{Op: ChangeStyle, Style: s} }
func SpeedUp() Command              { return Command{Op: AdjustSpeed, Sign: 1} }
func SlowDown() Command             { return Command{Op: AdjustSpeed, Sign: -1} }
func Do(op Op) Command              { return Command{Op: op} }
