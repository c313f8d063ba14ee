package programs

// Hole is a program with one open insertion point: prefix, hole, suffix.
type Hole struct {
	prefix Program
	suffix Program
}

func NewHole(prefix, suffix Program) Hole {
	return Hole{
		prefix: prefix,
		suffix: suffix,
	}
}

// Combine plugs right into the hole of left.
// Prefixes run in combine order, suffixes in reverse.
func Combine(left, right Hole) Hole {
	return Hole{
		prefix: Concat(left.prefix, right.prefix),
		suffix: Concat(right.suffix, left.suffix),
	}
}

// Close seals the hole with nothing.
func Close(h Hole) Program {
	return Concat(h.prefix, h.suffix)
}

// Fill seals the hole with p.
func Fill(h Hole, p Program) Program {
	return Concat(h.prefix, p, h.suffix)
}

func (h Hole) Prefix() Program {
	return h.prefix
}

func (h Hole) Suffix() Program {
	return h.suffix
}

func (h Hole) String() string {
	return "[" + h.prefix.String() + "] _ [" + h.suffix.String() + "]"
}
