package programs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombine(t *testing.T) {
	a := NewHole(Single(PrintText("a")), Single(PrintText("A")))
	b := NewHole(Single(PrintText("b")), Single(PrintText("B")))
	c := NewHole(Single(PrintText("c")), Single(PrintText("C")))

	ab := Combine(a, b)
	if str := Close(ab).Render(); str != "abBA" {
		t.Fatalf("got %s", str)
	}

	left := Close(Combine(Combine(a, b), c))
	right := Close(Combine(a, Combine(b, c)))
	if diff := cmp.Diff(left, right, allowProgram); diff != "" {
		t.Fatalf("not associative: %s", diff)
	}
	if str := left.Render(); str != "abcCBA" {
		t.Fatalf("got %s", str)
	}
}

func TestCombineIdentity(t *testing.T) {
	a := NewHole(Of(PrintText("a"), Skip()), Single(Halt()))
	empty := NewHole(Empty(), Empty())
	if diff := cmp.Diff(Combine(empty, a), a, allowProgram); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(Combine(a, empty), a, allowProgram); diff != "" {
		t.Fatal(diff)
	}
}

func TestCloseHaltDiscipline(t *testing.T) {
	seed := NewHole(Single(Skip()), Of(PrintNumber(15), Halt()))
	fizz := NewHole(Single(PrintText("Fizz")), Single(Halt()))
	buzz := NewHole(Single(PrintText("Buzz")), Single(Halt()))

	p := Close(Combine(Combine(seed, fizz), buzz))
	expected := []Instruction{
		Skip(),
		PrintText("Fizz"),
		PrintText("Buzz"),
		Halt(),
		Halt(),
		PrintNumber(15),
		Halt(),
	}
	if diff := cmp.Diff(p.Slice(), expected); diff != "" {
		t.Fatal(diff)
	}
	if str := p.Render(); str != "FizzBuzz" {
		t.Fatalf("got %s", str)
	}
}

func TestCloseLeavesHole(t *testing.T) {
	h := NewHole(Single(PrintText("x")), Single(Halt()))
	p1 := Close(h)
	p2 := Close(h)
	if !p1.Equal(p2) {
		t.Fatal()
	}
	if h.Prefix().Len() != 1 || h.Suffix().Len() != 1 {
		t.Fatalf("got %v", h)
	}
}

func TestFill(t *testing.T) {
	h := NewHole(Single(PrintText("(")), Of(PrintText(")"), Halt()))
	p := Fill(h, Single(PrintNumber(7)))
	if str := p.Render(); str != "(7)" {
		t.Fatalf("got %s", str)
	}
	if !Fill(h, Empty()).Equal(Close(h)) {
		t.Fatal()
	}
	if str := h.String(); str != `[print "("] _ [print ")"; halt]` {
		t.Fatalf("got %s", str)
	}
}
