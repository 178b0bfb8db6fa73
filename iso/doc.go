// Package iso treats type equality as a provable fact: two types are
// interchangeable when a conversion exists in each direction.
//
// Witness[A, B] is the proof artifact. Its only constructor, Prove, demands
// both directional conversions, so holding a witness means both directions
// exist; a pair with a missing direction has no way to produce one, and
// code depending on such a witness fails to compile at the call site that
// would have to supply the missing conversion.
//
//	type pair struct{ First, Second byte }
//
//	w := iso.Prove(
//		func(a [2]byte) pair { return pair{a[0], a[1]} },
//		func(p pair) [2]byte { return [2]byte{p.First, p.Second} },
//	)
//
// Every type is isomorphic with itself via Identity, which builds the
// witness from identity conversions.
//
// The relation proves existence only: it does not verify that the two
// conversions are mutual inverses. RoundTrips is available for callers who
// additionally want that stronger, value-level property.
package iso
