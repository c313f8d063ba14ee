package programs

import (
	"iter"
	"strings"
)

// Program is an immutable instruction sequence. The zero value is the empty program.
type Program struct {
	instructions []Instruction
}

func Empty() Program {
	return Program{}
}

func Single(inst Instruction) Program {
	return Program{
		instructions: []Instruction{inst},
	}
}

func Of(insts ...Instruction) Program {
	return Program{
		instructions: append([]Instruction(nil), insts...),
	}
}

// Concat joins programs in order. The result never shares storage with its operands.
func Concat(programs ...Program) Program {
	n := 0
	for _, p := range programs {
		n += len(p.instructions)
	}
	if n == 0 {
		return Program{}
	}
	insts := make([]Instruction, 0, n)
	for _, p := range programs {
		insts = append(insts, p.instructions...)
	}
	return Program{
		instructions: insts,
	}
}

func (p Program) Len() int {
	return len(p.instructions)
}

func (p Program) At(i int) Instruction {
	return p.instructions[i]
}

func (p Program) Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, inst := range p.instructions {
			if !yield(inst) {
				return
			}
		}
	}
}

// Slice returns a copy of all instructions, including unreachable ones.
func (p Program) Slice() []Instruction {
	return append([]Instruction(nil), p.instructions...)
}

// Steps yields the reachable instructions: everything up to and including the first halt.
func (p Program) Steps(yield func(Instruction) bool) {
	for _, inst := range p.instructions {
		if !yield(inst) {
			return
		}
		if inst.Op == OpHalt {
			return
		}
	}
}

func (p Program) Equal(other Program) bool {
	if len(p.instructions) != len(other.instructions) {
		return false
	}
	for i, inst := range p.instructions {
		if inst != other.instructions[i] {
			return false
		}
	}
	return true
}

func (p Program) String() string {
	strs := make([]string, 0, len(p.instructions))
	for _, inst := range p.instructions {
		strs = append(strs, inst.String())
	}
	return strings.Join(strs, "; ")
}
