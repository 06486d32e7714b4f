package eval

import (
	"testing"

	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/parser"
	"github.com/launix-de/nada/internal/rational"
	"github.com/launix-de/nada/internal/value"
)

func mustEval(t *testing.T, src string, e *env.Env, ctx *errs.Context) value.Value {
	t.Helper()
	exprs, err := parser.ParseAll(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	var result value.Value = value.Nil{}
	for _, x := range exprs {
		result = Eval(x, e, ctx)
	}
	return result
}

func newGlobal() *env.Env {
	g := env.New(nil)
	g.Set("+", value.Builtin{Name: "+", Fn: func(args []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		r := args[0].(value.Num).R
		for _, a := range args[1:] {
			r = r.Add(a.(value.Num).R)
		}
		return value.Num{R: r}
	}})
	g.Set("-", value.Builtin{Name: "-", Fn: func(args []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		r := args[0].(value.Num).R
		for _, a := range args[1:] {
			r = r.Sub(a.(value.Num).R)
		}
		return value.Num{R: r}
	}})
	g.Set("*", value.Builtin{Name: "*", Fn: func(args []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		r := args[0].(value.Num).R
		for _, a := range args[1:] {
			r = r.Mul(a.(value.Num).R)
		}
		return value.Num{R: r}
	}})
	g.Set("=", value.Builtin{Name: "=", Fn: func(args []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.Bool(args[0].(value.Num).R.Equal(args[1].(value.Num).R))
	}})
	g.Set("map", value.Builtin{Name: "map", Fn: func(args []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		fn := args[0]
		items := value.ToSlice(args[1])
		out := make([]value.Value, len(items))
		for i, it := range items {
			out[i] = Apply(fn, []value.Value{it}, ctx)
		}
		return value.FromSlice(out)
	}})
	return g
}

func numVal(v value.Value) rational.Rational {
	return v.(value.Num).R
}

func TestIfLambdaRecursiveFactorial(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	v := mustEval(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 10)
	`, g, ctx)
	want, _ := rational.Parse("3628800")
	if !numVal(v).Equal(want) {
		t.Fatalf("(fact 10) = %v, want 3628800", value.Print(v))
	}
}

func TestMapSquares(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	v := mustEval(t, `(map (lambda (x) (* x x)) '(1 2 3 4))`, g, ctx)
	items := value.ToSlice(v)
	want := []int64{1, 4, 9, 16}
	if len(items) != len(want) {
		t.Fatalf("got %d results, want %d", len(items), len(want))
	}
	for i, w := range want {
		if !numVal(items[i]).Equal(rational.FromInt64(w)) {
			t.Fatalf("item %d = %v, want %d", i, value.Print(items[i]), w)
		}
	}
}

func TestCounterClosureOutlivesLet(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	mustEval(t, `(define c (let ((x 0)) (lambda () (set! x (+ x 1)) x)))`, g, ctx)
	closure, ok := g.Lookup("c")
	if !ok {
		t.Fatal("c not defined")
	}
	for i, want := range []int64{1, 2, 3} {
		got := Apply(closure, nil, ctx)
		if !numVal(got).Equal(rational.FromInt64(want)) {
			t.Fatalf("call %d = %v, want %d", i+1, value.Print(got), want)
		}
	}
}

func TestQuoteReturnsUnevaluatedStructure(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	v := mustEval(t, `'(a 1 (+ 1 2))`, g, ctx)
	items := value.ToSlice(v)
	if len(items) != 3 || items[0] != value.Sym("a") {
		t.Fatalf("quoted list = %v", value.Print(v))
	}
	if !value.IsPair(items[2]) {
		t.Fatal("quote evaluated its inner (+ 1 2) instead of leaving it as data")
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	if v := mustEval(t, `(and #t #t 5)`, g, ctx); !numVal(v).Equal(rational.FromInt64(5)) {
		t.Fatalf("(and #t #t 5) = %v", value.Print(v))
	}
	if v := mustEval(t, `(and #t #f 5)`, g, ctx); v != value.Bool(false) {
		t.Fatalf("(and #t #f 5) = %v, want #f", value.Print(v))
	}
	if v := mustEval(t, `(or #f #f 7)`, g, ctx); !numVal(v).Equal(rational.FromInt64(7)) {
		t.Fatalf("(or #f #f 7) = %v", value.Print(v))
	}
	if v := mustEval(t, `(and)`, g, ctx); v != value.Bool(true) {
		t.Fatalf("(and) = %v, want #t", value.Print(v))
	}
	if v := mustEval(t, `(or)`, g, ctx); v != value.Bool(false) {
		t.Fatalf("(or) = %v, want #f", value.Print(v))
	}
}

func TestCondElseAndEmptyBody(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	v := mustEval(t, `(cond (#f 1) (#f 2) (else 3))`, g, ctx)
	if !numVal(v).Equal(rational.FromInt64(3)) {
		t.Fatalf("cond else = %v, want 3", value.Print(v))
	}
	v2 := mustEval(t, `(cond (#t))`, g, ctx)
	if v2 != value.Bool(true) {
		t.Fatalf("cond empty body = %v, want #t", value.Print(v2))
	}
}

func TestNamedLetRecursion(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	v := mustEval(t, `
		(let loop ((i 0) (acc 0))
			(if (= i 5) acc (loop (+ i 1) (+ acc i))))
	`, g, ctx)
	if !numVal(v).Equal(rational.FromInt64(10)) {
		t.Fatalf("named let sum = %v, want 10", value.Print(v))
	}
}

func TestDefineUndefRemovesBinding(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	mustEval(t, `(define x 5)`, g, ctx)
	if _, ok := g.Lookup("x"); !ok {
		t.Fatal("x not defined")
	}
	mustEval(t, `(undef 'x)`, g, ctx)
	if _, ok := g.Lookup("x"); ok {
		t.Fatal("x still defined after undef")
	}
}

func TestUndefinedSymbolReportsAndYieldsNil(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	var seen []errs.Kind
	ctx.SetSink(sinkFunc(func(k errs.Kind, m string) { seen = append(seen, k) }))
	v := mustEval(t, `nope`, g, ctx)
	if !value.IsNil(v) {
		t.Fatalf("undefined symbol result = %v, want Nil", value.Print(v))
	}
	if len(seen) != 1 || seen[0] != errs.UndefinedSymbol {
		t.Fatalf("expected one UndefinedSymbol report, got %v", seen)
	}
}

func TestVariadicAndRestParams(t *testing.T) {
	g := newGlobal()
	ctx := errs.NewContext()
	v := mustEval(t, `((lambda args args) 1 2 3)`, g, ctx)
	items := value.ToSlice(v)
	if len(items) != 3 {
		t.Fatalf("fully variadic params = %v, want 3 items", value.Print(v))
	}
	v2 := mustEval(t, `((lambda (a . rest) rest) 1 2 3)`, g, ctx)
	items2 := value.ToSlice(v2)
	if len(items2) != 2 {
		t.Fatalf("rest params = %v, want 2 trailing items", value.Print(v2))
	}
}

type sinkFunc func(errs.Kind, string)

func (f sinkFunc) Report(k errs.Kind, m string) { f(k, m) }
