package bears

import "github.com/tinybeachthor/bear-witness/witness"

// Bear is the capability checked by BearWitness. Growling is something all
// bears do.
type Bear interface {
	Growl() string
}

// BearWitness type checks the Bear capability without erasing type
// information.
//
// The constraint makes this callable only for types implementing Bear; a
// missing capability is a compile-time rejection, never a runtime error.
// The return preserves the concrete T, so methods outside the Bear
// capability remain reachable through the certificate.
func BearWitness[T Bear](bear T) witness.Certified[T] {
	return witness.New(bear)
}

// BrownBear implements Bear.
type BrownBear struct{}

// Growl implements the Bear capability.
func (BrownBear) Growl() string {
	return "<brown bear growl>"
}

// DoBrownBearThings is defined directly on BrownBear, not on Bear.
// Returning an interface from BearWitness would have erased it; keeping the
// concrete type keeps it callable after certification.
func (BrownBear) DoBrownBearThings() string {
	return "eating loads of honey"
}

// PolarBear implements Bear.
type PolarBear struct{}

// Growl implements the Bear capability.
func (PolarBear) Growl() string {
	return "<menacing polar bear growl>"
}

// Dog does not implement Bear, so BearWitness(Dog{}) does not compile.
type Dog struct{}

// Bark is a Dog thing. It is not growling.
func (Dog) Bark() string {
	return "woof"
}
