// Package bears demonstrates a capability check without type erasure.
//
// BearWitness only type-checks for types satisfying the Bear capability. It
// returns the concrete type wrapped in witness.Certified rather than an
// interface value, so certification narrows what is guaranteed about a
// value without narrowing what is accessible on it: after witnessing a
// BrownBear you can still call BrownBear-specific methods, which an
// interface-typed return would have erased.
//
//	certified := BearWitness(BrownBear{}) // witness.Certified[BrownBear]
//	certified.Value().Growl()
//	certified.Value().DoBrownBearThings() // concrete method survives
//
// The check is all-or-nothing and entirely static. Dog does not satisfy
// Bear, so the following does not compile:
//
//	BearWitness(Dog{})
//	// error: Dog does not satisfy Bear (missing method Growl)
package bears
