// Package report flattens the guest list into exportable tables. All
// confirmation arithmetic comes from the guest package's party aggregation;
// nothing here recomputes it.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"casamento/app/models/guest"
)

// GroupRow is one party in the group-level sheet.
type GroupRow struct {
	Name           string
	Spouse         string
	PartySize      int
	ConfirmedCount int
	Status         guest.PartyStatus
	Code           string
}

// PersonRow is one person in the person-level sheet.
type PersonRow struct {
	Group     string
	Person    string
	Kind      guest.PersonKind
	Confirmed bool
}

// Stats are the aggregate counters shown on the dashboard and the report
// header.
type Stats struct {
	Parties         int `json:"parties"`
	People          int `json:"people"`
	ConfirmedPeople int `json:"confirmed_people"`
	FullParties     int `json:"full_parties"`
	PartialParties  int `json:"partial_parties"`
	NoneParties     int `json:"none_parties"`
}

// BuildGroupRows maps each guest to its group-level row.
func BuildGroupRows(guests []guest.Guest) []GroupRow {
	rows := make([]GroupRow, 0, len(guests))
	for _, g := range guests {
		party := g.Party()
		rows = append(rows, GroupRow{
			Name:           g.Name,
			Spouse:         g.Spouse,
			PartySize:      party.PartySize,
			ConfirmedCount: party.ConfirmedCount,
			Status:         party.Status,
			Code:           g.ConfirmationCode,
		})
	}
	return rows
}

// BuildPersonRows expands each party into one row per person.
func BuildPersonRows(guests []guest.Guest) []PersonRow {
	var rows []PersonRow
	for _, g := range guests {
		rows = append(rows, PersonRow{
			Group: g.Name, Person: g.Name, Kind: guest.PersonMain, Confirmed: g.IsConfirmed,
		})
		if g.Spouse != "" {
			rows = append(rows, PersonRow{
				Group: g.Name, Person: g.Spouse, Kind: guest.PersonSpouse, Confirmed: g.SpouseConfirmation,
			})
		}
		for _, name := range g.Children {
			rows = append(rows, PersonRow{
				Group: g.Name, Person: name, Kind: guest.PersonChild, Confirmed: g.ChildrenConfirmations[name],
			})
		}
		for _, name := range g.Companions {
			rows = append(rows, PersonRow{
				Group: g.Name, Person: name, Kind: guest.PersonCompanion, Confirmed: g.CompanionsConfirmations[name],
			})
		}
	}
	return rows
}

// BuildStats reduces the guest list to the aggregate counters.
func BuildStats(guests []guest.Guest) Stats {
	var stats Stats
	for _, g := range guests {
		party := g.Party()
		stats.Parties++
		stats.People += party.PartySize
		stats.ConfirmedPeople += party.ConfirmedCount
		switch party.Status {
		case guest.StatusFull:
			stats.FullParties++
		case guest.StatusPartial:
			stats.PartialParties++
		default:
			stats.NoneParties++
		}
	}
	return stats
}

var statusLabels = map[guest.PartyStatus]string{
	guest.StatusFull:    "Confirmado",
	guest.StatusPartial: "Parcial",
	guest.StatusNone:    "Pendente",
}

var kindLabels = map[guest.PersonKind]string{
	guest.PersonMain:      "Convidado",
	guest.PersonSpouse:    "Cônjuge",
	guest.PersonChild:     "Criança",
	guest.PersonCompanion: "Acompanhante",
}

func confirmedLabel(confirmed bool) string {
	if confirmed {
		return "Sim"
	}
	return "Não"
}

// WriteCSV writes the group-level table as CSV.
func WriteCSV(w io.Writer, guests []guest.Guest) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Convidado", "Cônjuge", "Pessoas", "Confirmados", "Situação", "Código"}); err != nil {
		return err
	}

	for _, row := range BuildGroupRows(guests) {
		record := []string{
			row.Name,
			row.Spouse,
			fmt.Sprintf("%d", row.PartySize),
			fmt.Sprintf("%d", row.ConfirmedCount),
			statusLabels[row.Status],
			row.Code,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// BuildXLSX assembles the two-sheet spreadsheet: "Grupos" with one row per
// party and "Pessoas" with one row per person.
func BuildXLSX(guests []guest.Guest) (*excelize.File, error) {
	f := excelize.NewFile()

	const groupSheet = "Grupos"
	const personSheet = "Pessoas"

	if err := f.SetSheetName("Sheet1", groupSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(personSheet); err != nil {
		return nil, err
	}

	groupHeaders := []interface{}{"Convidado", "Cônjuge", "Pessoas", "Confirmados", "Situação", "Código"}
	if err := writeRow(f, groupSheet, 1, groupHeaders); err != nil {
		return nil, err
	}
	for i, row := range BuildGroupRows(guests) {
		values := []interface{}{
			row.Name, row.Spouse, row.PartySize, row.ConfirmedCount, statusLabels[row.Status], row.Code,
		}
		if err := writeRow(f, groupSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	personHeaders := []interface{}{"Grupo", "Pessoa", "Tipo", "Confirmado"}
	if err := writeRow(f, personSheet, 1, personHeaders); err != nil {
		return nil, err
	}
	for i, row := range BuildPersonRows(guests) {
		values := []interface{}{
			row.Group, row.Person, kindLabels[row.Kind], confirmedLabel(row.Confirmed),
		}
		if err := writeRow(f, personSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
