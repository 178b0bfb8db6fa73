package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthSealed(t *testing.T) {
	// Verify both cases implement Auth (compile-time check via assignment).
	var _ Auth[Session] = Admin[Session]{}
	var _ Auth[Session] = User[Session]{}
}

func TestAuthenticateAdmin(t *testing.T) {
	session := Session{UserID: 0, Token: "tok-admin"}

	a := Authenticate(session)

	admin, ok := a.(Admin[Session])
	require.True(t, ok, "UserID 0 must classify as Admin")
	assert.Equal(t, session, admin.Value)
}

func TestAuthenticateUser(t *testing.T) {
	session := Session{UserID: 1000, Token: "tok-user"}

	a := Authenticate(session)

	user, ok := a.(User[Session])
	require.True(t, ok, "non-zero UserID must classify as User")
	assert.Equal(t, session, user.Value)
}

func TestClassificationPreservesPayload(t *testing.T) {
	// Classification relabels, never mutates: the payload comes out
	// field-for-field identical for every case.
	for _, userID := range []uint32{0, 1, 1000, 4294967295} {
		session := NewSession(userID)
		got := Match(Authenticate(session),
			func(s Session) Session { return s },
			func(s Session) Session { return s },
		)
		assert.Equal(t, session, got)
	}
}

func TestCaseName(t *testing.T) {
	assert.Equal(t, "Admin", CaseName(Authenticate(Session{UserID: 0})))
	assert.Equal(t, "User", CaseName(Authenticate(Session{UserID: 7})))
}

func TestMatchRequiresEveryCase(t *testing.T) {
	// This test documents the exhaustiveness guarantee: Match takes one
	// handler per case, so a partial match does not compile:
	//
	//	Match(Authenticate(session), func(Session) string { return "admin" })
	//	// error: not enough arguments in call to Match
	//
	// Adding a case to the partition changes Match's signature and breaks
	// every caller until the new case is handled.
	got := Match(Authenticate(Session{UserID: 0}),
		func(Session) string { return "admin" },
		func(Session) string { return "user" },
	)
	assert.Equal(t, "admin", got)
}

func TestAdminPage(t *testing.T) {
	page, err := AdminPage(Authenticate(Session{UserID: 0}))
	require.NoError(t, err)
	assert.Equal(t, AdminPageHTML, page)
}

func TestAdminPageNotFoundForUser(t *testing.T) {
	page, err := AdminPage(Authenticate(Session{UserID: 1000}))

	require.Error(t, err)
	assert.Empty(t, page)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "NOT_FOUND: 404", err.Error())
}

func TestHandler(t *testing.T) {
	page, err := Handler()
	require.NoError(t, err)
	assert.Equal(t, AdminPageHTML, page)
}

func TestNewSessionTokens(t *testing.T) {
	a := NewSession(0)
	b := NewSession(0)

	assert.NotEmpty(t, a.Token)
	assert.NotEqual(t, a.Token, b.Token)
	assert.Equal(t, uint32(0), a.UserID)
}
