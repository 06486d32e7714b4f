package parser

import (
	"testing"

	"github.com/launix-de/nada/internal/value"
)

func mustOne(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := ParseOne(src)
	if err != nil {
		t.Fatalf("ParseOne(%q): %v", src, err)
	}
	return v
}

func TestAtoms(t *testing.T) {
	if v := mustOne(t, "#t"); v != value.Bool(true) {
		t.Fatalf("#t = %v", v)
	}
	if v := mustOne(t, "#f"); v != value.Bool(false) {
		t.Fatalf("#f = %v", v)
	}
	if v := mustOne(t, "foo"); v != value.Sym("foo") {
		t.Fatalf("foo = %v", v)
	}
	if v := mustOne(t, "-"); v != value.Sym("-") {
		t.Fatalf("- = %v, want symbol", v)
	}
	num, ok := mustOne(t, "42").(value.Num)
	if !ok || num.R.String() != "42" {
		t.Fatalf("42 = %v", num)
	}
}

func TestStringLiteral(t *testing.T) {
	v := mustOne(t, `"hello \"world\""`)
	if v != value.Str(`hello "world"`) {
		t.Fatalf("string = %q", v)
	}
}

func TestProperList(t *testing.T) {
	v := mustOne(t, "(+ 1 2)")
	items := value.ToSlice(v)
	if len(items) != 3 {
		t.Fatalf("(+ 1 2) has %d items, want 3", len(items))
	}
	if items[0] != value.Sym("+") {
		t.Fatalf("head = %v", items[0])
	}
	if !value.IsNil(v.(value.Pair).Cdr.(value.Pair).Cdr.(value.Pair).Cdr) {
		t.Fatal("list not properly nil-terminated")
	}
}

func TestBracketsInterchangeable(t *testing.T) {
	a := mustOne(t, "(1 2 3)")
	b := mustOne(t, "[1 2 3]")
	if !value.Equal(a, b) {
		t.Fatalf("(1 2 3) != [1 2 3]: %v vs %v", a, b)
	}
	c := mustOne(t, "(1 [2 3] 4)")
	items := value.ToSlice(c)
	if len(items) != 3 || !value.IsPair(items[1]) {
		t.Fatalf("mixed brackets did not nest: %v", c)
	}
}

func TestDottedPair(t *testing.T) {
	v := mustOne(t, "(1 . 2)")
	p, ok := v.(value.Pair)
	if !ok {
		t.Fatalf("(1 . 2) is not a pair: %v", v)
	}
	if !value.Equal(p.Car, value.NewInt(1)) || !value.Equal(p.Cdr, value.NewInt(2)) {
		t.Fatalf("(1 . 2) = %v", v)
	}
}

func TestDottedRestInList(t *testing.T) {
	v := mustOne(t, "(1 2 . 3)")
	p1 := v.(value.Pair)
	p2 := p1.Cdr.(value.Pair)
	if !value.Equal(p1.Car, value.NewInt(1)) || !value.Equal(p2.Car, value.NewInt(2)) {
		t.Fatalf("(1 2 . 3) = %v", v)
	}
	if !value.Equal(p2.Cdr, value.NewInt(3)) {
		t.Fatalf("dotted tail = %v, want 3", p2.Cdr)
	}
}

func TestQuoteSugar(t *testing.T) {
	v := mustOne(t, "'(a b)")
	items := value.ToSlice(v)
	if len(items) != 2 || items[0] != value.Sym("quote") {
		t.Fatalf("'(a b) = %v, want (quote (a b))", v)
	}
	inner := value.ToSlice(items[1])
	if len(inner) != 2 || inner[0] != value.Sym("a") || inner[1] != value.Sym("b") {
		t.Fatalf("quoted inner = %v", items[1])
	}
}

func TestQuoteNestsWithAtom(t *testing.T) {
	v := mustOne(t, "'x")
	items := value.ToSlice(v)
	if len(items) != 2 || items[0] != value.Sym("quote") || items[1] != value.Sym("x") {
		t.Fatalf("'x = %v, want (quote x)", v)
	}
}

func TestParseAllMultipleTopLevel(t *testing.T) {
	vs, err := ParseAll("(define x 1) (define y 2)")
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("got %d expressions, want 2", len(vs))
	}
}

func TestMismatchedBracketIsError(t *testing.T) {
	if _, err := ParseOne("(1 2]"); err == nil {
		t.Fatal("expected error for mismatched bracket kinds")
	}
}

func TestUnterminatedListIsError(t *testing.T) {
	if _, err := ParseOne("(1 2"); err == nil {
		t.Fatal("expected error for unterminated list")
	}
}

func TestNegativeNumberLiteral(t *testing.T) {
	v := mustOne(t, "-5")
	num, ok := v.(value.Num)
	if !ok || num.R.String() != "-5" {
		t.Fatalf("-5 = %v", v)
	}
}

func TestFractionAndDecimalLiterals(t *testing.T) {
	f := mustOne(t, "1/3").(value.Num)
	if f.R.String() != "1/3" {
		t.Fatalf("1/3 = %v", f.R.String())
	}
	d := mustOne(t, "0.5").(value.Num)
	if d.R.String() != "1/2" {
		t.Fatalf("0.5 = %v, want 1/2", d.R.String())
	}
}
