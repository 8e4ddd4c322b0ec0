package entities

// IdentityMap is the transient old-identity to new-identity lookup used while
// reconstructing serialized items. It covers node, port and link identities in
// one namespace since all are UUIDs. The map has no lifetime beyond a single
// reconstruction pass.
type IdentityMap struct {
	byOld map[string]string
}

// NewIdentityMap creates an empty identity map
func NewIdentityMap() IdentityMap {
	return IdentityMap{byOld: make(map[string]string)}
}

// Bind records a serialized identity and the live identity it became
func (m IdentityMap) Bind(old, live string) {
	m.byOld[old] = live
}

// Resolve looks up the live identity for a serialized one
func (m IdentityMap) Resolve(old string) (string, bool) {
	live, ok := m.byOld[old]
	return live, ok
}

// Len returns the number of recorded bindings
func (m IdentityMap) Len() int {
	return len(m.byOld)
}
