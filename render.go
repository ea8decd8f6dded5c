package calc

import (
	"errors"

	"github.com/fatih/color"
)

var (
	errLabel = color.New(color.FgRed, color.Bold)
	errText  = color.New(color.FgHiWhite, color.Bold)
	errWhere = color.New(color.FgHiBlack)
)

// FormatError renders err for terminal display: a red label, the message in
// bold white, and a dim source location line when the error carries a
// position. Color output honors the NO_COLOR convention through the color
// package.
func FormatError(err error) string {
	msg := err.Error()
	var pos *Position
	var e *Error
	if errors.As(err, &e) {
		msg = e.Message()
		if p, ok := e.Pos(); ok {
			pos = &p
		}
	}
	s := errLabel.Sprint("error: ") + errText.Sprint(msg)
	if pos != nil {
		s += "\n  " + errWhere.Sprint("-> "+pos.String())
	}
	return s
}
