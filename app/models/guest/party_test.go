package guest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool {
	return &b
}

func sampleFamily() Guest {
	return Guest{
		ID:                      "g1",
		Name:                    "João",
		Spouse:                  "Maria",
		Children:                NameList{"Pedro", "Ana"},
		Companions:              NameList{"Carlos"},
		ChildrenConfirmations:   ConfirmationMap{},
		CompanionsConfirmations: ConfirmationMap{},
	}
}

func TestPartySizeCountsEveryMember(t *testing.T) {
	g := sampleFamily()
	party := g.Party()

	assert.Equal(t, 5, party.PartySize)
	assert.Equal(t, 0, party.ConfirmedCount)
	assert.Equal(t, StatusNone, party.Status)
}

func TestPartySizeSingleGuest(t *testing.T) {
	g := Guest{Name: "Rita"}
	party := g.Party()

	assert.Equal(t, 1, party.PartySize)
	assert.Equal(t, StatusNone, party.Status)

	g.IsConfirmed = true
	party = g.Party()
	assert.Equal(t, 1, party.ConfirmedCount)
	assert.Equal(t, StatusFull, party.Status)
}

func TestPartyStatusTransitions(t *testing.T) {
	g := sampleFamily()

	g.IsConfirmed = true
	assert.Equal(t, StatusPartial, g.Party().Status)

	g.SpouseConfirmation = true
	g.ChildrenConfirmations = ConfirmationMap{"Pedro": true, "Ana": true}
	g.CompanionsConfirmations = ConfirmationMap{"Carlos": true}
	party := g.Party()
	assert.Equal(t, 5, party.ConfirmedCount)
	assert.Equal(t, StatusFull, party.Status)
}

func TestPartyCoupleWithOneConfirmation(t *testing.T) {
	g := Guest{Name: "Ana", Spouse: "Bob", IsConfirmed: true}
	party := g.Party()

	assert.Equal(t, 2, party.PartySize)
	assert.Equal(t, 1, party.ConfirmedCount)
	assert.Equal(t, StatusPartial, party.Status)
}

func TestPartyIsOrderInsensitive(t *testing.T) {
	g := sampleFamily()
	g.ChildrenConfirmations = ConfirmationMap{"Ana": true}

	shuffled := g
	shuffled.Children = NameList{"Ana", "Pedro"}
	shuffled.Companions = NameList{"Carlos"}

	assert.Equal(t, g.Party(), shuffled.Party())
}

func TestSetPersonConfirmationRoundTrip(t *testing.T) {
	g := sampleFamily()
	key := PersonKey{Kind: PersonChild, Name: "Pedro"}

	on, err := SetPersonConfirmation(g, key, true)
	require.NoError(t, err)
	off, err := SetPersonConfirmation(on, key, false)
	require.NoError(t, err)

	assert.Equal(t, g.ChildrenConfirmations["Pedro"], off.ChildrenConfirmations["Pedro"])
	assert.Equal(t, g.Party(), off.Party())
}

func TestPartyIgnoresStaleConfirmationEntries(t *testing.T) {
	g := sampleFamily()
	g.ChildrenConfirmations = ConfirmationMap{"Pedro": true, "Removido": true}
	g.CompanionsConfirmations = ConfirmationMap{"Outro": true}

	party := g.Party()
	assert.Equal(t, 5, party.PartySize)
	assert.Equal(t, 1, party.ConfirmedCount, "only Pedro is still on a list")
}

func TestPartyIgnoresSpouseConfirmationWithoutSpouse(t *testing.T) {
	g := Guest{Name: "Rita", SpouseConfirmation: true}
	party := g.Party()

	assert.Equal(t, 1, party.PartySize)
	assert.Equal(t, 0, party.ConfirmedCount)
}

func TestSetPersonConfirmation(t *testing.T) {
	g := sampleFamily()

	updated, err := SetPersonConfirmation(g, PersonKey{Kind: PersonMain}, true)
	require.NoError(t, err)
	assert.True(t, updated.IsConfirmed)
	assert.False(t, g.IsConfirmed, "input value stays untouched")

	updated, err = SetPersonConfirmation(g, PersonKey{Kind: PersonSpouse}, true)
	require.NoError(t, err)
	assert.True(t, updated.SpouseConfirmation)

	updated, err = SetPersonConfirmation(g, PersonKey{Kind: PersonChild, Name: "Ana"}, true)
	require.NoError(t, err)
	assert.True(t, updated.ChildrenConfirmations["Ana"])

	updated, err = SetPersonConfirmation(g, PersonKey{Kind: PersonCompanion, Name: "Carlos"}, true)
	require.NoError(t, err)
	assert.True(t, updated.CompanionsConfirmations["Carlos"])
}

func TestSetPersonConfirmationRejectsUnknownTargets(t *testing.T) {
	g := sampleFamily()

	_, err := SetPersonConfirmation(g, PersonKey{Kind: PersonChild, Name: "Zé"}, true)
	assert.Error(t, err)

	_, err = SetPersonConfirmation(g, PersonKey{Kind: PersonCompanion, Name: "Zé"}, true)
	assert.Error(t, err)

	single := Guest{Name: "Rita"}
	_, err = SetPersonConfirmation(single, PersonKey{Kind: PersonSpouse}, true)
	assert.Error(t, err)

	_, err = SetPersonConfirmation(g, PersonKey{Kind: "pet", Name: "Rex"}, true)
	assert.Error(t, err)
}

func TestApplyConfirmationUpdateOmittedFieldsKeepPriorValues(t *testing.T) {
	g := sampleFamily()
	g.IsConfirmed = true
	g.ChildrenConfirmations = ConfirmationMap{"Pedro": true}

	updated := ApplyConfirmationUpdate(g, ConfirmationUpdate{
		SpouseConfirmation: boolPtr(true),
	})

	assert.True(t, updated.IsConfirmed)
	assert.True(t, updated.SpouseConfirmation)
	assert.True(t, updated.ChildrenConfirmations["Pedro"])
}

func TestApplyConfirmationUpdateReplacesProvidedMaps(t *testing.T) {
	g := sampleFamily()
	g.ChildrenConfirmations = ConfirmationMap{"Pedro": true}

	updated := ApplyConfirmationUpdate(g, ConfirmationUpdate{
		ChildrenConfirmations: map[string]bool{"Ana": true},
	})

	assert.True(t, updated.ChildrenConfirmations["Ana"])
	assert.False(t, updated.ChildrenConfirmations["Pedro"], "provided map replaces, not merges")
}

func TestApplyConfirmationUpdateFiltersUnknownNames(t *testing.T) {
	g := sampleFamily()

	updated := ApplyConfirmationUpdate(g, ConfirmationUpdate{
		ChildrenConfirmations:   map[string]bool{"Pedro": true, "Intruso": true},
		CompanionsConfirmations: map[string]bool{"Desconhecido": true},
	})

	assert.True(t, updated.ChildrenConfirmations["Pedro"])
	_, ok := updated.ChildrenConfirmations["Intruso"]
	assert.False(t, ok)
	assert.Empty(t, updated.CompanionsConfirmations)

	party := updated.Party()
	assert.Equal(t, 1, party.ConfirmedCount)
}

func TestApplyConfirmationUpdateDropsSpouseBitWithoutSpouse(t *testing.T) {
	g := Guest{Name: "Rita"}

	updated := ApplyConfirmationUpdate(g, ConfirmationUpdate{
		SpouseConfirmation: boolPtr(true),
	})

	assert.False(t, updated.SpouseConfirmation)
}

func TestApplyConfirmationUpdateIsIdempotent(t *testing.T) {
	g := sampleFamily()
	upd := ConfirmationUpdate{
		IsConfirmed:           boolPtr(true),
		SpouseConfirmation:    boolPtr(false),
		ChildrenConfirmations: map[string]bool{"Pedro": true},
	}

	once := ApplyConfirmationUpdate(g, upd)
	twice := ApplyConfirmationUpdate(once, upd)

	assert.Equal(t, once.Party(), twice.Party())
	assert.Equal(t, once.IsConfirmed, twice.IsConfirmed)
	assert.Equal(t, once.ChildrenConfirmations, twice.ChildrenConfirmations)
}

func TestUpdateFamilyPrunesRemovedPeople(t *testing.T) {
	g := sampleFamily()
	g.SpouseConfirmation = true
	g.ChildrenConfirmations = ConfirmationMap{"Pedro": true, "Ana": true}
	g.CompanionsConfirmations = ConfirmationMap{"Carlos": true}

	updated := UpdateFamily(g, "", []string{"Ana"}, nil)

	assert.Empty(t, updated.Spouse)
	assert.False(t, updated.SpouseConfirmation)
	assert.Equal(t, NameList{"Ana"}, updated.Children)
	assert.True(t, updated.ChildrenConfirmations["Ana"])
	_, ok := updated.ChildrenConfirmations["Pedro"]
	assert.False(t, ok)
	assert.Empty(t, updated.CompanionsConfirmations)

	party := updated.Party()
	assert.Equal(t, 2, party.PartySize)
	assert.Equal(t, 1, party.ConfirmedCount)
}

func TestUpdateFamilyKeepsSurvivingConfirmations(t *testing.T) {
	g := sampleFamily()
	g.ChildrenConfirmations = ConfirmationMap{"Pedro": true}

	updated := UpdateFamily(g, "Maria", []string{"Pedro", "Novo"}, []string{"Carlos"})

	assert.True(t, updated.ChildrenConfirmations["Pedro"])
	assert.False(t, updated.ChildrenConfirmations["Novo"])
	assert.Equal(t, 5, updated.Party().PartySize)
}
