package semantic

// Scope is the ordered collection of names visible from the current point
// of the traversal backward in program order. It only grows: there is no
// nesting and no removal, so one Scope lives for a whole analysis run.
type Scope struct {
	names []string       // Declaration order, duplicates kept
	seen  map[string]int // Name -> number of declarations
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{
		seen: make(map[string]int),
	}
}

// Declare appends name unconditionally. Callers that must reject
// redeclarations check Contains first.
func (s *Scope) Declare(name string) {
	s.names = append(s.names, name)
	s.seen[name]++
}

// Contains reports whether name has been declared.
func (s *Scope) Contains(name string) bool {
	return s.seen[name] > 0
}

// Len returns the number of declarations, duplicates included.
func (s *Scope) Len() int {
	return len(s.names)
}

// Names returns the declared names in declaration order.
func (s *Scope) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
