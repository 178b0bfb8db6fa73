package auth

// AdminPageHTML is the fixed payload returned for admin sessions.
const AdminPageHTML = "<html>admin</html>"

// AdminPage returns the admin page for Admin sessions, or a NOT_FOUND
// error for everyone else.
//
// Note this never re-checks UserID: the case of the witness is the whole
// truth about the predicate.
func AdminPage(a Auth[Session]) (string, error) {
	type result struct {
		page string
		err  error
	}
	r := Match(a,
		func(Session) result { return result{page: AdminPageHTML} },
		func(Session) result { return result{err: NewNotFoundError()} },
	)
	return r.page, r.err
}

// Handler runs the demo route end to end:
//
//  1. get current session
//  2. authenticate
//  3. AdminPage
func Handler() (string, error) {
	session := NewSession(0)
	return AdminPage(Authenticate(session))
}
