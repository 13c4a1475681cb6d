package form

import "testing"

func TestGateConfirm(t *testing.T) {
	var fired []int
	g := NewGate(func(id int) { fired = append(fired, id) })

	if _, ok := g.Pending(); ok {
		t.Fatal("fresh gate should have nothing pending")
	}

	g.Request(5)
	if id, ok := g.Pending(); !ok || id != 5 {
		t.Fatalf("pending = %d,%v", id, ok)
	}
	if len(fired) != 0 {
		t.Fatal("request alone must not fire")
	}

	g.Confirm()
	if len(fired) != 1 || fired[0] != 5 {
		t.Fatalf("fired = %v", fired)
	}
	if _, ok := g.Pending(); ok {
		t.Fatal("gate should close after confirm")
	}

	// Confirm with nothing pending is a no-op.
	g.Confirm()
	if len(fired) != 1 {
		t.Fatalf("double fire: %v", fired)
	}
}

func TestGateCancel(t *testing.T) {
	fired := false
	g := NewGate(func(string) { fired = true })

	g.Request("delete-me")
	g.Cancel()
	if _, ok := g.Pending(); ok {
		t.Fatal("cancel should clear the pending payload")
	}
	g.Confirm()
	if fired {
		t.Fatal("cancelled payload must never fire")
	}
}

func TestGateRequestReplaces(t *testing.T) {
	var got int
	g := NewGate(func(id int) { got = id })
	g.Request(1)
	g.Request(2)
	g.Confirm()
	if got != 2 {
		t.Fatalf("confirmed %d, want the latest request 2", got)
	}
}
