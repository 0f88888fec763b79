package guest

import (
	"fmt"
)

// PartyStatus classifies how much of a party has answered yes.
type PartyStatus string

const (
	StatusFull    PartyStatus = "full"    // everyone confirmed
	StatusPartial PartyStatus = "partial" // some confirmed
	StatusNone    PartyStatus = "none"    // nobody confirmed
)

// PartySummary aggregates the confirmation state of one party.
type PartySummary struct {
	PartySize      int         `json:"party_size"`
	ConfirmedCount int         `json:"confirmed_count"`
	Status         PartyStatus `json:"status"`
}

// Party computes the party size, the confirmed head count and the resulting
// status for a guest record. This is the single place this arithmetic lives;
// list views, filters, stats and exports all go through it.
//
// Confirmation-map entries whose name is not in the corresponding list are
// stale and do not count.
func (g Guest) Party() PartySummary {
	size := 1 + len(g.Children) + len(g.Companions)
	if g.Spouse != "" {
		size++
	}

	confirmed := 0
	if g.IsConfirmed {
		confirmed++
	}
	if g.Spouse != "" && g.SpouseConfirmation {
		confirmed++
	}
	for _, name := range g.Children {
		if g.ChildrenConfirmations[name] {
			confirmed++
		}
	}
	for _, name := range g.Companions {
		if g.CompanionsConfirmations[name] {
			confirmed++
		}
	}

	status := StatusPartial
	switch confirmed {
	case 0:
		status = StatusNone
	case size:
		status = StatusFull
	}

	return PartySummary{
		PartySize:      size,
		ConfirmedCount: confirmed,
		Status:         status,
	}
}

// PersonKind identifies which member of the party a key refers to.
type PersonKind string

const (
	PersonMain      PersonKind = "main"
	PersonSpouse    PersonKind = "spouse"
	PersonChild     PersonKind = "child"
	PersonCompanion PersonKind = "companion"
)

// PersonKey addresses one confirmable person inside a party. Name is only
// meaningful for children and companions.
type PersonKey struct {
	Kind PersonKind `json:"kind"`
	Name string     `json:"name,omitempty"`
}

// SetPersonConfirmation returns a copy of the guest with exactly one
// confirmation flag changed. Addressing a spouse the guest does not have, or
// a child/companion name not on the respective list, is an error: this is the
// admin's single-person toggle and a typo should surface, not vanish.
func SetPersonConfirmation(g Guest, key PersonKey, confirmed bool) (Guest, error) {
	switch key.Kind {
	case PersonMain:
		g.IsConfirmed = confirmed
	case PersonSpouse:
		if g.Spouse == "" {
			return g, fmt.Errorf("convidado %q não possui cônjuge", g.Name)
		}
		g.SpouseConfirmation = confirmed
	case PersonChild:
		if !contains(g.Children, key.Name) {
			return g, fmt.Errorf("criança %q não está na lista do convidado %q", key.Name, g.Name)
		}
		g.ChildrenConfirmations = withEntry(g.ChildrenConfirmations, key.Name, confirmed)
	case PersonCompanion:
		if !contains(g.Companions, key.Name) {
			return g, fmt.Errorf("acompanhante %q não está na lista do convidado %q", key.Name, g.Name)
		}
		g.CompanionsConfirmations = withEntry(g.CompanionsConfirmations, key.Name, confirmed)
	default:
		return g, fmt.Errorf("tipo de pessoa desconhecido: %s", key.Kind)
	}
	return g, nil
}

// ConfirmationUpdate is the self-service payload. Nil fields were omitted
// and keep their prior values.
type ConfirmationUpdate struct {
	IsConfirmed             *bool           `json:"is_confirmed"`
	SpouseConfirmation      *bool           `json:"spouse_confirmation"`
	ChildrenConfirmations   map[string]bool `json:"children_confirmations"`
	CompanionsConfirmations map[string]bool `json:"companions_confirmations"`
}

// ApplyConfirmationUpdate merges a self-service submission into a guest and
// returns the updated copy. Unlike SetPersonConfirmation this filters
// silently: a spouse bit for a spouse-less guest and map keys outside the
// guest's lists are dropped, so a stale or hostile client can never write
// confirmations for people who are not part of the party.
func ApplyConfirmationUpdate(g Guest, upd ConfirmationUpdate) Guest {
	if upd.IsConfirmed != nil {
		g.IsConfirmed = *upd.IsConfirmed
	}
	if upd.SpouseConfirmation != nil && g.Spouse != "" {
		g.SpouseConfirmation = *upd.SpouseConfirmation
	}
	if upd.ChildrenConfirmations != nil {
		g.ChildrenConfirmations = filterToNames(upd.ChildrenConfirmations, g.Children)
	}
	if upd.CompanionsConfirmations != nil {
		g.CompanionsConfirmations = filterToNames(upd.CompanionsConfirmations, g.Companions)
	}
	return g
}

// UpdateFamily returns a copy with the family composition replaced.
// Confirmation entries for removed people are pruned so that stale data
// never counts; removing the spouse also clears their confirmation.
func UpdateFamily(g Guest, spouse string, children, companions []string) Guest {
	g.Spouse = spouse
	if spouse == "" {
		g.SpouseConfirmation = false
	}
	g.Children = NameList(children)
	g.Companions = NameList(companions)
	g.ChildrenConfirmations = filterToNames(g.ChildrenConfirmations, g.Children)
	g.CompanionsConfirmations = filterToNames(g.CompanionsConfirmations, g.Companions)
	return g
}

func filterToNames(m map[string]bool, names NameList) ConfirmationMap {
	out := make(ConfirmationMap, len(names))
	for _, name := range names {
		if v, ok := m[name]; ok {
			out[name] = v
		}
	}
	return out
}

func withEntry(m ConfirmationMap, name string, value bool) ConfirmationMap {
	out := make(ConfirmationMap, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[name] = value
	return out
}

func contains(names NameList, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
