package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casamento/app/models/guest"
)

func fixtureGuests() []guest.Guest {
	return []guest.Guest{
		{
			Name:               "João",
			Spouse:             "Maria",
			IsConfirmed:        true,
			SpouseConfirmation: true,
			Children:           guest.NameList{"Pedro"},
			ChildrenConfirmations: guest.ConfirmationMap{
				"Pedro": true,
			},
			ConfirmationCode: "123456",
		},
		{
			Name:             "Rita",
			Companions:       guest.NameList{"Carlos"},
			IsConfirmed:      true,
			ConfirmationCode: "654321",
		},
		{
			Name:             "Paulo",
			ConfirmationCode: "111222",
		},
	}
}

func TestBuildStats(t *testing.T) {
	stats := BuildStats(fixtureGuests())

	assert.Equal(t, 3, stats.Parties)
	assert.Equal(t, 6, stats.People)
	assert.Equal(t, 4, stats.ConfirmedPeople)
	assert.Equal(t, 1, stats.FullParties)
	assert.Equal(t, 1, stats.PartialParties)
	assert.Equal(t, 1, stats.NoneParties)
}

func TestBuildGroupRows(t *testing.T) {
	rows := BuildGroupRows(fixtureGuests())
	require.Len(t, rows, 3)

	assert.Equal(t, "João", rows[0].Name)
	assert.Equal(t, "Maria", rows[0].Spouse)
	assert.Equal(t, 3, rows[0].PartySize)
	assert.Equal(t, 3, rows[0].ConfirmedCount)
	assert.Equal(t, guest.StatusFull, rows[0].Status)
	assert.Equal(t, "123456", rows[0].Code)

	assert.Equal(t, guest.StatusPartial, rows[1].Status)
	assert.Equal(t, guest.StatusNone, rows[2].Status)
}

func TestBuildPersonRowsExpandsParties(t *testing.T) {
	rows := BuildPersonRows(fixtureGuests())
	require.Len(t, rows, 6)

	assert.Equal(t, PersonRow{Group: "João", Person: "João", Kind: guest.PersonMain, Confirmed: true}, rows[0])
	assert.Equal(t, PersonRow{Group: "João", Person: "Maria", Kind: guest.PersonSpouse, Confirmed: true}, rows[1])
	assert.Equal(t, PersonRow{Group: "João", Person: "Pedro", Kind: guest.PersonChild, Confirmed: true}, rows[2])
	assert.Equal(t, PersonRow{Group: "Rita", Person: "Carlos", Kind: guest.PersonCompanion, Confirmed: false}, rows[4])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, fixtureGuests()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Convidado", "Cônjuge", "Pessoas", "Confirmados", "Situação", "Código"}, records[0])
	assert.Equal(t, []string{"João", "Maria", "3", "3", "Confirmado", "123456"}, records[1])
	assert.Equal(t, []string{"Rita", "", "2", "1", "Parcial", "654321"}, records[2])
	assert.Equal(t, []string{"Paulo", "", "1", "0", "Pendente", "111222"}, records[3])
}

func TestBuildXLSXSheets(t *testing.T) {
	f, err := BuildXLSX(fixtureGuests())
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Grupos", "Pessoas"}, f.GetSheetList())

	name, err := f.GetCellValue("Grupos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "João", name)

	status, err := f.GetCellValue("Grupos", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Confirmado", status)

	kind, err := f.GetCellValue("Pessoas", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Convidado", kind)

	confirmed, err := f.GetCellValue("Pessoas", "D6")
	require.NoError(t, err)
	assert.Equal(t, "Não", confirmed, "Carlos has not confirmed")
}
