package vault

import "github.com/google/uuid"

// State is the navigator's position in the tree: the selected owner (client)
// and the facet values chosen so far. The zero value is the root, where no
// client is selected yet. State is a value; every transition returns a new
// one, leaving the old untouched.
type State struct {
	clientID uuid.UUID
	path     []string
}

func Root() State {
	return State{}
}

func (s State) AtRoot() bool {
	return s.clientID == uuid.Nil
}

func (s State) ClientID() uuid.UUID {
	return s.clientID
}

func (s State) Path() []string {
	path := make([]string, len(s.path))
	copy(path, s.path)
	return path
}

func (s State) Depth() int {
	return len(s.path)
}

// SelectOwner enters a client's tree. Switching owners from any position
// resets the path to the client's top level.
func (s State) SelectOwner(clientID uuid.UUID) State {
	return State{clientID: clientID}
}

// Descend appends a facet value to the path. The move is only legal when the
// current view actually lists a folder with that value; anything else (a
// file-level view, a value that is not among the children) is an ignored
// no-op reported via ok=false so the caller can log it.
func (s State) Descend(view []ViewNode, value string) (State, bool) {
	if s.AtRoot() {
		return s, false
	}
	found := false
	for _, node := range view {
		if node.Type == NodeFolder && node.Value == value {
			found = true
			break
		}
	}
	if !found {
		return s, false
	}
	path := make([]string, len(s.path)+1)
	copy(path, s.path)
	path[len(s.path)] = value
	return State{clientID: s.clientID, path: path}, true
}

// AscendOne pops the last path segment. Popping at the client's top level
// leaves the tree entirely and returns to the root (owner list).
func (s State) AscendOne() State {
	if s.AtRoot() {
		return s
	}
	if len(s.path) == 0 {
		return Root()
	}
	path := make([]string, len(s.path)-1)
	copy(path, s.path[:len(s.path)-1])
	return State{clientID: s.clientID, path: path}
}

// AscendTo truncates the path to the given depth, as a breadcrumb click
// would. Depth 0 is the client's top level. Depths outside [0, Depth()] are
// ignored no-ops.
func (s State) AscendTo(depth int) (State, bool) {
	if depth < 0 || depth > len(s.path) {
		return s, false
	}
	path := make([]string, depth)
	copy(path, s.path[:depth])
	return State{clientID: s.clientID, path: path}, true
}
