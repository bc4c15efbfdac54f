package appointment

import "testing"

func TestParseStatus_Fallback(t *testing.T) {
	if got := ParseStatus("weird value from db"); got != StatusScheduled {
		t.Fatalf("expected fallback to scheduled, got %q", got)
	}
	if got := ParseStatus("realized"); got != StatusRealized {
		t.Fatalf("expected realized, got %q", got)
	}
}

func TestBlocksAgenda(t *testing.T) {
	cases := map[Status]bool{
		StatusScheduled: true,
		StatusConfirmed: true,
		StatusRealized:  true,
		StatusCancelled: false,
		StatusNoShow:    false,
	}

	for status, want := range cases {
		if got := status.BlocksAgenda(); got != want {
			t.Fatalf("status %s: expected BlocksAgenda=%v, got %v", status, want, got)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusRealized, StatusNoShow} {
		if !status.IsTerminal() {
			t.Fatalf("expected %s to be terminal", status)
		}
	}
	for _, status := range []Status{StatusScheduled, StatusConfirmed} {
		if status.IsTerminal() {
			t.Fatalf("expected %s to not be terminal", status)
		}
	}
}
