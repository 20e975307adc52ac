package stats

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// ExtractDataFromFile calls handler for every row of the first sheet of the
// spreadsheet at path. Files ending in .xlsx are read as Office Open XML,
// anything else as legacy XLS.
func ExtractDataFromFile(path string, handler func(r []string)) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return ExtractDataFromXLSX(path, handler)
	}
	return ExtractDataFromXLS(path, handler)
}

func ExtractDataFromXLS(path string, handler func(r []string)) error {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read XLS file %s: %w", path, err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(rawData), "utf-8")
	if err != nil {
		return fmt.Errorf("open XLS file %s: %w", path, err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("%s: %w", path, ErrNoSheet)
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row != nil {
			var cols []string
			for j := 0; j <= row.LastCol(); j++ {
				cols = append(cols, row.Col(j))
			}
			handler(cols)
		}
	}
	return nil
}

func ExtractDataFromXLSX(path string, handler func(r []string)) error {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open XLSX file %s: %w", path, err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%s: %w", path, ErrNoSheet)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("get rows for sheet %q of %s: %w", sheets[0], path, err)
	}

	for _, r := range rows {
		handler(r)
	}
	return nil
}

// recordColumns maps JSON field names of StateRecord to field indexes.
var recordColumns = func() map[string]int {
	cols := make(map[string]int)
	t := reflect.TypeOf(StateRecord{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		cols[name] = i
	}
	return cols
}()

var (
	rateType   = reflect.TypeOf((*float64)(nil))
	numberType = reflect.TypeOf(Number(""))
)

func setColumn(r *StateRecord, field int, cell string) error {
	cell = strings.TrimSpace(cell)
	v := reflect.ValueOf(r).Elem().Field(field)

	switch v.Type() {
	case rateType:
		if cell == "" {
			return nil
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(Rate(f)))
	case numberType:
		v.SetString(cell)
	default:
		switch v.Kind() {
		case reflect.Bool:
			switch strings.ToLower(cell) {
			case "true", "1", "yes", "y":
				v.SetBool(true)
			}
		case reflect.String:
			v.SetString(cell)
		}
	}
	return nil
}

// ReadStateRecords imports state records from a spreadsheet whose first row
// names the record fields, e.g. "state", "blackPosPerCap", "blackSmallN".
// Empty rate cells mean the state has no data for that rate.
func ReadStateRecords(path string) ([]*StateRecord, error) {
	var (
		header  []int
		records []*StateRecord
		rowErr  error
		line    int
	)

	err := ExtractDataFromFile(path, func(row []string) {
		line++
		if rowErr != nil {
			return
		}

		if header == nil {
			for _, name := range row {
				name = strings.TrimSpace(name)
				if name == "" {
					header = append(header, -1)
					continue
				}
				field, found := recordColumns[name]
				if !found {
					rowErr = fmt.Errorf("%w %q in %s", ErrUnknownColumn, name, path)
					return
				}
				header = append(header, field)
			}
			return
		}

		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			return
		}

		r := new(StateRecord)
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			if header[i] < 0 {
				continue
			}
			if err := setColumn(r, header[i], cell); err != nil {
				rowErr = fmt.Errorf("%s row %d: %w", path, line, err)
				return
			}
		}
		records = append(records, r)
	})
	if err != nil {
		return nil, err
	}
	if rowErr != nil {
		return nil, rowErr
	}

	return records, nil
}
