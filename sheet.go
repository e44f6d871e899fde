package wtree

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Rule sets style properties on matching elements.
// Empty Kind and Class match all elements. Later rules override earlier ones.
type Rule struct {
	Kind  string // Kind name, e.g. "Label".
	Class string
	Props map[string]interface{}
}

func (r Rule) matches(e *Element) bool {
	return (r.Kind == "" || r.Kind == e.name()) && (r.Class == "" || r.Class == e.Class)
}

// Sheet is a StyleResolver with an ordered list of rules.
// Changes to the rules are announced on Changed, with the kinds of properties touched.
type Sheet struct {
	Changed Signal[PropertyKinds]

	mu    sync.RWMutex
	rules []Rule
}

var _ StyleResolver = &Sheet{}

// NewSheet returns a sheet with rules.
func NewSheet(rules ...Rule) *Sheet {
	return &Sheet{rules: rules}
}

// PropertyValue returns the value of the last matching rule that sets name.
func (s *Sheet) PropertyValue(e *Element, name string, fallback interface{}) interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.rules) - 1; i >= 0; i-- {
		r := s.rules[i]
		if !r.matches(e) {
			continue
		}
		if v, ok := r.Props[name]; ok {
			return v
		}
	}
	return fallback
}

// Rules returns a copy of the rules.
func (s *Sheet) Rules() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Rule(nil), s.rules...)
}

// SetRules replaces all rules and emits Changed.
func (s *Sheet) SetRules(rules ...Rule) {
	s.mu.Lock()
	old := s.rules
	s.rules = rules
	s.mu.Unlock()

	var kinds PropertyKinds
	for _, l := range [][]Rule{old, rules} {
		for _, r := range l {
			for _, name := range maps.Keys(r.Props) {
				kinds.Add(PropertyKindOf(name))
			}
		}
	}
	if kinds != 0 {
		s.Changed.Emit(kinds)
	}
}

// AddRule appends a rule and emits Changed.
func (s *Sheet) AddRule(r Rule) {
	s.mu.Lock()
	s.rules = append(s.rules, r)
	s.mu.Unlock()

	var kinds PropertyKinds
	for _, name := range maps.Keys(r.Props) {
		kinds.Add(PropertyKindOf(name))
	}
	if kinds != 0 {
		s.Changed.Emit(kinds)
	}
}
