package errs

import "testing"

type recordingSink struct {
	kinds []Kind
	msgs  []string
}

func (s *recordingSink) Report(kind Kind, message string) {
	s.kinds = append(s.kinds, kind)
	s.msgs = append(s.msgs, message)
}

func TestReportAndConsume(t *testing.T) {
	c := NewContext()
	sink := &recordingSink{}
	c.SetSink(sink)

	c.Report(TypeError, "expected number")
	kind, msg, ok := c.CheckAndConsume()
	if !ok || kind != TypeError || msg != "expected number" {
		t.Fatalf("got (%v, %q, %v)", kind, msg, ok)
	}
	if _, _, ok := c.CheckAndConsume(); ok {
		t.Fatal("second consume should find nothing")
	}
	if len(sink.kinds) != 1 {
		t.Fatalf("sink saw %d reports, want 1", len(sink.kinds))
	}
}

func TestSilentLookupSuppressesOnlyUndefinedSymbol(t *testing.T) {
	c := NewContext()
	sink := &recordingSink{}
	c.SetSink(sink)

	c.WithSilentLookup(func() {
		c.Report(UndefinedSymbol, "x")
		c.Report(TypeError, "boom")
	})
	if len(sink.kinds) != 1 || sink.kinds[0] != TypeError {
		t.Fatalf("expected only TypeError to reach the sink, got %v", sink.kinds)
	}
}

func TestSilentLookupRestoresOnPanic(t *testing.T) {
	c := NewContext()
	func() {
		defer func() { recover() }()
		c.WithSilentLookup(func() {
			panic("boom")
		})
	}()
	if c.SilentLookup() {
		t.Fatal("silent-lookup flag must be restored even when fn panics")
	}
}

func TestClearResetsToNone(t *testing.T) {
	c := NewContext()
	c.SetSink(&recordingSink{})
	c.Report(DivisionByZero, "x/0")
	c.Clear()
	kind, msg := c.Get()
	if kind != None || msg != "" {
		t.Fatalf("after Clear got (%v, %q)", kind, msg)
	}
}
