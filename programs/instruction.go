package programs

import (
	"fmt"
	"strconv"
)

type Op uint8

const (
	OpSkip Op = iota
	OpHalt
	OpPrintText
	OpPrintNumber
)

func (o Op) String() string {
	switch o {
	case OpSkip:
		return "skip"
	case OpHalt:
		return "halt"
	case OpPrintText:
		return "print_text"
	case OpPrintNumber:
		return "print_number"
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Instruction is one step of output. Text is meaningful only for OpPrintText, Number only for OpPrintNumber.
type Instruction struct {
	Op     Op
	Text   string
	Number uint64
}

func Skip() Instruction {
	return Instruction{
		Op: OpSkip,
	}
}

func Halt() Instruction {
	return Instruction{
		Op: OpHalt,
	}
}

func PrintText(text string) Instruction {
	return Instruction{
		Op:   OpPrintText,
		Text: text,
	}
}

func PrintNumber(n uint64) Instruction {
	return Instruction{
		Op:     OpPrintNumber,
		Number: n,
	}
}

func (i Instruction) String() string {
	switch i.Op {
	case OpPrintText:
		return "print " + strconv.Quote(i.Text)
	case OpPrintNumber:
		return "print " + strconv.FormatUint(i.Number, 10)
	}
	return i.Op.String()
}
