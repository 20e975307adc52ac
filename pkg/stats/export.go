package stats

import (
	"fmt"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
)

var exportHeader = []interface{}{
	"State", "Rate type", "Group", "Cases per 100k", "Deaths per 100k", "Cases width", "Deaths width",
}

// WriteCardsXLSX writes one row per bar of each card to a new workbook at path.
func WriteCardsXLSX(path string, cards []*Card) error {
	wb := xlsx.NewFile()
	sheet := wb.GetSheetList()[0]

	rows := [][]interface{}{exportHeader}
	for _, c := range cards {
		for _, g := range c.Summary.Groups {
			rows = append(rows, []interface{}{
				c.State,
				c.RateType,
				g.Label,
				cell(g.Cases),
				cell(g.Deaths),
				width(c.Cases, g.Label),
				width(c.Deaths, g.Label),
			})
		}
	}

	for i, row := range rows {
		axis, err := xlsx.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := wb.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func cell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func width(bars []Bar, label string) interface{} {
	for _, b := range bars {
		if b.Label == label {
			return b.Width
		}
	}
	return ""
}
