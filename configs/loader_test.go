package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
limit?: int & >=0
start?: int & >=0
rules?: [...{factor: int & >0, text: string}]
`

type testRule struct {
	Factor uint64 `json:"factor"`
	Text   string `json:"text"`
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/a.cue", "testdata/b.cue"}, testSchema)

	var limit int
	if err := loader.AssignFirst("limit", &limit); err != nil {
		t.Fatal(err)
	}
	if limit != 100 {
		t.Fatalf("got %v", limit)
	}

	var start int
	if err := loader.AssignFirst("start", &start); err != nil {
		t.Fatal(err)
	}
	if start != 10 {
		t.Fatalf("got %v", start)
	}

	var rules []testRule
	if err := loader.AssignFirst("rules", &rules); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", rules); str != "[{2 even}]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("foo", &rules)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/b.cue"}, testSchema)
	start, err := First[int](loader, "start")
	if err != nil {
		t.Fatal(err)
	}
	if start != 10 {
		t.Fatalf("got %v", start)
	}
	limit, err := First[uint64](loader, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if limit != 0 {
		t.Fatalf("got %v", limit)
	}
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{"testdata/a.cue", "testdata/b.cue"}, testSchema)
	var limits []int
	for limit, err := range All[int](loader, "limit") {
		if err != nil {
			t.Fatal(err)
		}
		limits = append(limits, limit)
	}
	if str := fmt.Sprintf("%v", limits); str != "[100 200]" {
		t.Fatalf("got %s", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, testSchema)
	var str string
	if err := loader.AssignFirst("unknown_field", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestZeroFactor(t *testing.T) {
	loader := NewLoader([]string{"testdata/zero.cue"}, testSchema)
	var rules []testRule
	if err := loader.AssignFirst("rules", &rules); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/missing.cue"}, testSchema)
	if _, err := First[int](loader, "limit"); err == nil {
		t.Fatal("should error")
	}
}
