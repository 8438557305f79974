package wizard

import (
	"maps"
	"slices"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
)

// Flag is a session-scoped condition set earlier in the flow.
type Flag string

const (
	FlagNeedsClearance     Flag = "needs_clearance"
	FlagHasSpouse          Flag = "has_spouse"
	FlagHasChildren        Flag = "has_children"
	FlagHasPartyMembership Flag = "has_party_membership"
)

// IsValid returns true if the flag is one of the defined constants.
func (f Flag) IsValid() bool {
	switch f {
	case FlagNeedsClearance, FlagHasSpouse, FlagHasChildren, FlagHasPartyMembership:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f Flag) String() string {
	return string(f)
}

// Flags is the closed set of session flags. Absent flags are false.
type Flags map[Flag]bool

// Has reports whether f is set.
func (fs Flags) Has(f Flag) bool {
	return fs[f]
}

// With returns a copy of fs with the given updates applied.
func (fs Flags) With(updates Flags) Flags {
	out := maps.Clone(fs)
	if out == nil {
		out = make(Flags, len(updates))
	}
	maps.Copy(out, updates)
	return out
}

// Names returns the set flags in sorted order.
func (fs Flags) Names() []string {
	var names []string
	for f, on := range fs {
		if on {
			names = append(names, string(f))
		}
	}
	slices.Sort(names)
	return names
}

// ParseFlags converts collaborator input into Flags. Unknown names are
// rejected rather than ignored.
func ParseFlags(raw map[string]bool) (Flags, error) {
	out := make(Flags, len(raw))
	bad := make(map[string]string)
	for name, on := range raw {
		f := Flag(name)
		if !f.IsValid() {
			bad["flags."+name] = "unknown flag"
			continue
		}
		out[f] = on
	}
	if len(bad) > 0 {
		return nil, &domain.ValidationError{Fields: bad}
	}
	return out, nil
}
