package domain

// Actor is the authenticated principal attached to a request by the
// admission middleware. It is decoded from the JWT exactly once and
// threaded explicitly through every service call that mutates state.
type Actor struct {
	ID       int64
	Username string
	Role     string
}
