package iso

// Witness proves that types A and B are interchangeable: a conversion
// exists in each direction. The zero value is not a valid witness; go
// through Prove or Identity.
type Witness[A, B any] struct {
	into func(A) B
	from func(B) A
}

// Prove constructs a witness from the two directional conversions. Both are
// required, checked independently per direction; there is no constructor
// for a half-proven pair. A nil function is not a conversion.
func Prove[A, B any](into func(A) B, from func(B) A) Witness[A, B] {
	if into == nil || from == nil {
		panic("iso: both conversions are required")
	}
	return Witness[A, B]{into: into, from: from}
}

// Identity returns the reflexive witness: every type converts to itself.
func Identity[X any]() Witness[X, X] {
	id := func(x X) X { return x }
	return Witness[X, X]{into: id, from: id}
}

// Into converts in the A to B direction.
func (w Witness[A, B]) Into(a A) B {
	return w.into(a)
}

// From converts in the B to A direction.
func (w Witness[A, B]) From(b B) A {
	return w.from(b)
}

// Reverse flips the witness. Isomorphism is symmetric, so this needs no new
// proof material.
func (w Witness[A, B]) Reverse() Witness[B, A] {
	return Witness[B, A]{into: w.from, from: w.into}
}

// Compose chains two witnesses through a shared middle type, proving
// transitivity: A interchangeable with B and B with C gives A with C.
func Compose[A, B, C any](ab Witness[A, B], bc Witness[B, C]) Witness[A, C] {
	return Witness[A, C]{
		into: func(a A) C { return bc.into(ab.into(a)) },
		from: func(c C) A { return ab.from(bc.from(c)) },
	}
}

// Assert is a no-op whose successful call is the proof: it can only be
// invoked for a pair whose two directional conversions exist. A pair with
// no conversion in some direction has nothing to pass here, so dependent
// code fails to compile rather than erroring at runtime.
func Assert[A, B any](func(A) B, func(B) A) {}

// RoundTrips reports whether the witness inverts the given value. The
// witness itself never requires this; it is the stronger, value-level
// property on top of bare convertibility.
func RoundTrips[A comparable, B any](w Witness[A, B], a A) bool {
	return w.From(w.Into(a)) == a
}
