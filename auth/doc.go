// Package auth demonstrates lifting a runtime value into a type: the
// state-partition witness.
//
// Authenticate evaluates the admin predicate over Session.UserID exactly
// once and moves the session into one of two tagged cases, Admin or User.
// The case and the predicate result can never diverge afterwards because
// downstream code only ever sees the tagged value; there is no untagged
// session left to re-check.
//
//	session := NewSession(0)
//	page, err := AdminPage(Authenticate(session))
//
// Dispatch goes through Match, which takes one handler per case. Omitting a
// handler is a compile-time error, and adding a case to the partition
// changes Match's signature, breaking every caller until the new case is
// handled. That break is the point: a plain runtime branch would let a new
// case fall through silently.
//
// The sealed Auth interface keeps the case set closed; only Admin and User
// implement it.
package auth
