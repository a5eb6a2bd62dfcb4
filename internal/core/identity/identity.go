package identity

// ID is the opaque caller identity supplied by the authentication boundary.
// The zero value is the anonymous sentinel: no authenticated caller.
type ID string

// Anonymous is the reserved identity for unauthenticated requests.
const Anonymous ID = ""

// IsAnonymous reports whether the identity is the anonymous sentinel.
func (id ID) IsAnonymous() bool {
	return id == Anonymous
}

// Set is a membership set of identities, used for the admin list.
type Set map[ID]struct{}

// NewSet builds a Set from the given identities. Empty entries are skipped
// so that the anonymous sentinel can never be granted membership.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		s[ID(id)] = struct{}{}
	}
	return s
}

// Contains reports whether the identity is a member of the set.
func (s Set) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}
