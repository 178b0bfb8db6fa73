package witness

// Certified is a transparent single-field wrapper marking a value as
// type-checked. It is returned from witness functions to certify that the
// wrapped value passed their check.
//
// Certified[T] adds nothing to T at runtime: it holds exactly one field of
// type T, so its memory layout is that of T, it is comparable exactly when
// T is comparable, and copying it copies the value. The certification is a
// purely static distinction.
//
// There is no way to replace the wrapped value after construction. Read
// access goes through Value, which returns the value unchanged with its
// concrete type intact.
type Certified[T any] struct {
	value T
}

// New wraps a value unconditionally.
//
// New carries no proof by itself. The meaning of a Certified[T] comes from
// the witness function that called New: a constraint-gated witness only
// type-checks for values that satisfy its capability, so every certificate
// it hands out is backed by that check.
func New[T any](value T) Certified[T] {
	return Certified[T]{value: value}
}

// Value returns the wrapped value.
//
// The concrete type is preserved, so operations specific to T remain
// available after certification.
func (c Certified[T]) Value() T {
	return c.value
}
