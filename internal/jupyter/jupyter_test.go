package jupyter

import (
	"strings"
	"testing"
)

func TestNewSessionHasStableUUID(t *testing.T) {
	s := NewSession(nil)
	if len(s.ID) != 36 {
		t.Fatalf("session id = %q, want a 36-char uuid", s.ID)
	}
}

func TestMarshalReplyShape(t *testing.T) {
	b, err := MarshalReply(Reply{SessionID: "abc", Result: "42"})
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"session_id":"abc"`) || !strings.Contains(s, `"result":"42"`) {
		t.Fatalf("unexpected json: %s", s)
	}
	if strings.Contains(s, `"error"`) {
		t.Fatalf("empty error should be omitted: %s", s)
	}
}

func TestMarshalReplyWithError(t *testing.T) {
	b, err := MarshalReply(Reply{SessionID: "abc", Result: "", Error: "type error: bad"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"error":"type error: bad"`) {
		t.Fatalf("expected error field, got %s", string(b))
	}
}
