package form

// Gate is a generic two-step confirm-before-commit wrapper. A payload sits
// pending until Confirm fires the callback; Cancel discards it. This is the
// sole guard against accidental destructive actions, since there is no undo.
type Gate[T any] struct {
	pending   *T
	onConfirm func(T)
}

func NewGate[T any](onConfirm func(T)) *Gate[T] {
	return &Gate[T]{onConfirm: onConfirm}
}

// Request stages a payload, replacing any previously pending one.
func (g *Gate[T]) Request(payload T) {
	g.pending = &payload
}

// Pending returns the staged payload, if any.
func (g *Gate[T]) Pending() (T, bool) {
	if g.pending == nil {
		var zero T
		return zero, false
	}
	return *g.pending, true
}

// Confirm fires the callback with the staged payload and closes the gate.
// A no-op when nothing is pending.
func (g *Gate[T]) Confirm() {
	if g.pending == nil {
		return
	}
	payload := *g.pending
	g.pending = nil
	if g.onConfirm != nil {
		g.onConfirm(payload)
	}
}

// Cancel discards the staged payload without acting on it.
func (g *Gate[T]) Cancel() {
	g.pending = nil
}
