package programs

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Playback writes the program to w, stopping at the first halt.
// A halt writes a single line terminator.
func (p Program) Playback(w io.Writer) error {
	var buf []byte
	for inst := range p.Steps {
		buf = buf[:0]
		switch inst.Op {
		case OpSkip:
			continue
		case OpHalt:
			buf = append(buf, '\n')
		case OpPrintText:
			buf = append(buf, inst.Text...)
		case OpPrintNumber:
			buf = strconv.AppendUint(buf, inst.Number, 10)
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("playback: %w", err)
		}
	}
	return nil
}

// Render is Playback into a string, without the line terminator.
func (p Program) Render() string {
	var b strings.Builder
	for inst := range p.Steps {
		switch inst.Op {
		case OpPrintText:
			b.WriteString(inst.Text)
		case OpPrintNumber:
			b.WriteString(strconv.FormatUint(inst.Number, 10))
		}
	}
	return b.String()
}
