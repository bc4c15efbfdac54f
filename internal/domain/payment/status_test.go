package payment

import "testing"

func TestParseMethod(t *testing.T) {
	if got := ParseMethod("pix"); got != MethodPix {
		t.Fatalf("expected pix, got %q", got)
	}
	if got := ParseMethod("bitcoin"); got != MethodCash {
		t.Fatalf("expected fallback to cash, got %q", got)
	}
}

func TestParseStatus(t *testing.T) {
	if got := ParseStatus("refunded"); got != StatusRefunded {
		t.Fatalf("expected refunded, got %q", got)
	}
	if got := ParseStatus(""); got != StatusPending {
		t.Fatalf("expected fallback to pending, got %q", got)
	}
	if got := InitialStatus(); got != StatusPending {
		t.Fatalf("expected initial status pending, got %q", got)
	}
}
