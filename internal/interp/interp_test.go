package interp

import (
	"testing"

	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/value"
)

func TestFactorialEndToEnd(t *testing.T) {
	it := New()
	v := it.EvalSource(`
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 10)
	`)
	if value.Print(v) != "3628800" {
		t.Fatalf("(fact 10) = %s, want 3628800", value.Print(v))
	}
}

func TestMapSquaresEndToEnd(t *testing.T) {
	it := New()
	v := it.EvalSource(`(map (lambda (x) (* x x)) '(1 2 3 4))`)
	if value.Print(v) != "(1 4 9 16)" {
		t.Fatalf("map squares = %s", value.Print(v))
	}
}

func TestCounterClosureEndToEnd(t *testing.T) {
	it := New()
	it.EvalSource(`(define c (let ((x 0)) (lambda () (set! x (+ x 1)) x)))`)
	for i, want := range []string{"1", "2", "3"} {
		v := it.EvalSource(`(c)`)
		if value.Print(v) != want {
			t.Fatalf("call %d = %s, want %s", i+1, value.Print(v), want)
		}
	}
}

func TestThreeArgEvalCatchesUndefinedSymbol(t *testing.T) {
	it := New()
	v := it.EvalSource(`(eval 'undefined-symbol (lambda () 'missing) (lambda (v) v))`)
	if value.Print(v) != "missing" {
		t.Fatalf("3-arg eval = %s, want missing", value.Print(v))
	}
	if k, _ := it.Ctx.Get(); k == errs.UndefinedSymbol {
		t.Fatal("3-arg eval should not leave UndefinedSymbol on the channel")
	}
}

func TestErrorChannelShortCircuitsMultiExpressionDriver(t *testing.T) {
	it := New()
	var seen []errs.Kind
	it.SetSink(errSink(func(k errs.Kind, m string) { seen = append(seen, k) }))
	v := it.EvalSource(`
		(car 5)
		42
	`)
	e, ok := v.(value.Err)
	if !ok {
		t.Fatalf("expected Err result, got %v", value.Print(v))
	}
	if len(seen) != 1 || seen[0] != errs.TypeError {
		t.Fatalf("expected single TypeError report, got %v", seen)
	}
	_ = e
}

func TestDividingByZeroReportsAndReturnsErr(t *testing.T) {
	it := New()
	var seen []errs.Kind
	it.SetSink(errSink(func(k errs.Kind, m string) { seen = append(seen, k) }))
	v := it.EvalSource(`(/ 1 0)`)
	if ev, ok := v.(value.Err); !ok || value.Print(ev) == "" {
		t.Fatalf("result = %v", value.Print(v))
	}
	if len(seen) != 1 || seen[0] != errs.DivisionByZero {
		t.Fatalf("expected DivisionByZero, got %v", seen)
	}
}

func TestFactorBuiltin(t *testing.T) {
	it := New()
	v := it.EvalSource(`(factor 60)`)
	if value.Print(v) != "((2 . 2) (3 . 1) (5 . 1))" {
		t.Fatalf("(factor 60) = %s", value.Print(v))
	}
}

func TestStringAndListBuiltins(t *testing.T) {
	it := New()
	v := it.EvalSource(`(string-upcase (string-join (string-split "a,b,c" ",") "-"))`)
	if value.Print(v) != `"A-B-C"` {
		t.Fatalf("string pipeline = %s", value.Print(v))
	}
	v2 := it.EvalSource(`(sublist (list 1 2 3 4 5) 1 3)`)
	if value.Print(v2) != "(2 3)" {
		t.Fatalf("sublist = %s", value.Print(v2))
	}
}

type errSink func(errs.Kind, string)

func (f errSink) Report(k errs.Kind, m string) { f(k, m) }
