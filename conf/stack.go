package conf

// stack is the resolution call stack: the ordered chain of keys currently
// being dereferenced, paired with a set for O(1) membership tests. A key
// pushed while already present signals a reference cycle.
//
// The stack is owned by a single resolution session and threaded through the
// recursive calls; entries are popped on return (success or failure) so
// sibling resolutions are unaffected.
type stack struct {
	chain  []string
	member map[string]struct{}
}

func newStack() *stack {
	return &stack{member: make(map[string]struct{})}
}

func (s *stack) contains(key string) bool {
	_, ok := s.member[key]

	return ok
}

func (s *stack) push(key string) {
	s.chain = append(s.chain, key)
	s.member[key] = struct{}{}
}

func (s *stack) pop() {
	if len(s.chain) == 0 {
		return
	}

	key := s.chain[len(s.chain)-1]
	s.chain = s.chain[:len(s.chain)-1]
	delete(s.member, key)
}

func (s *stack) depth() int {
	return len(s.chain)
}

// path returns a copy of the chain in discovery order for diagnostics.
func (s *stack) path() []string {
	path := make([]string, len(s.chain))
	copy(path, s.chain)

	return path
}
