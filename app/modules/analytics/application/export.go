package analyticsservice

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	TeamsSheet      = "Teams"
	TopScorersSheet = "Top Scorers"
)

var (
	teamsHeader   = []any{"Country", "Rating", "Played", "Wins", "Draws", "Losses", "Goals For", "Goals Against"}
	scorersHeader = []any{"Rank", "Player", "Team", "Goals"}
)

// BuildWorkbook writes report into a two-sheet XLSX workbook.
func BuildWorkbook(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), TeamsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(TopScorersSheet); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", TopScorersSheet, err)
	}

	if err := writeRow(f, TeamsSheet, 1, teamsHeader); err != nil {
		return nil, err
	}
	for i, t := range report.Teams {
		s := t.Stats
		row := []any{t.Country, t.Rating, s.MatchesPlayed, s.Wins, s.Draws, s.Losses, s.GoalsScored, s.GoalsAgainst}
		if err := writeRow(f, TeamsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, TopScorersSheet, 1, scorersHeader); err != nil {
		return nil, err
	}
	for i, s := range report.TopScorers {
		if err := writeRow(f, TopScorersSheet, i+2, []any{i + 1, s.Player, s.Team, s.Goals}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	axis, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
