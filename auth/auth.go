package auth

// Auth is a sealed type witness for the admin predicate over a payload.
// Only Admin[T] and User[T] implement it.
//
// Holding an Auth[T] means the predicate was already evaluated; holding an
// Admin[T] means it held. The payload type parameter ties a case to its
// partition, so an Admin[Session] is not an Auth of any other payload.
type Auth[T any] interface {
	authCase(T) // Sealed - only Admin and User implement it
}

// Admin witnesses that the admin predicate held when the payload was
// classified.
type Admin[T any] struct {
	Value T
}

func (Admin[T]) authCase(T) {}

// User witnesses that the admin predicate did not hold.
type User[T any] struct {
	Value T
}

func (User[T]) authCase(T) {}

// Authenticate classifies a session by its UserID, moving it into exactly
// one case of the partition.
//
// Admin <=> Session.UserID == 0. The predicate is evaluated here and never
// again; the returned witness is the only handle on the session.
func Authenticate(session Session) Auth[Session] {
	if session.UserID == 0 {
		return Admin[Session]{Value: session}
	}
	return User[Session]{Value: session}
}

// Match dispatches on the partition case. One handler per case is required,
// so a caller cannot omit a case without a compile-time error, and adding a
// case to the partition breaks every Match call site until handled.
func Match[T, R any](a Auth[T], admin func(T) R, user func(T) R) R {
	switch c := a.(type) {
	case Admin[T]:
		return admin(c.Value)
	case User[T]:
		return user(c.Value)
	}
	// Unreachable: the Auth interface is sealed.
	panic("auth: unknown Auth case")
}

// CaseName returns the tag of the partition case, for diagnostics and
// serialized output.
func CaseName[T any](a Auth[T]) string {
	return Match(a,
		func(T) string { return "Admin" },
		func(T) string { return "User" },
	)
}
