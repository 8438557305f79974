package wizard

// SkipPredicate decides from the session flags alone whether a step is
// bypassed.
type SkipPredicate func(Flags) bool

// Predicate identifiers usable in step configuration.
const (
	SkipWithoutClearance = "without_clearance"
	SkipWithoutSpouse    = "without_spouse"
	SkipWithoutChildren  = "without_children"
	SkipNotPartyMember   = "not_party_member"
)

var predicates = map[string]SkipPredicate{
	SkipWithoutClearance: func(f Flags) bool { return !f.Has(FlagNeedsClearance) },
	SkipWithoutSpouse:    func(f Flags) bool { return !f.Has(FlagHasSpouse) },
	SkipWithoutChildren:  func(f Flags) bool { return !f.Has(FlagHasChildren) },
	SkipNotPartyMember:   func(f Flags) bool { return !f.Has(FlagHasPartyMembership) },
}

// LookupPredicate resolves a predicate identifier.
func LookupPredicate(name string) (SkipPredicate, bool) {
	p, ok := predicates[name]
	return p, ok
}
