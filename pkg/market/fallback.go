package market

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"krishi/entities"
)

//go:embed fallback.yaml
var defaultTable []byte

// Table is the static fallback, keyed by state then crop. It is never
// modified after it is built.
type Table map[string]map[string][]PriceRow

// DefaultTable returns the built-in table.
func DefaultTable() Table {
	t, err := parseYAML(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded fallback table: %v", err))
	}
	return t
}

// LoadTable reads a replacement table from a .yaml/.yml or .xlsx file. An
// empty path returns the built-in table.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parseYAML(b)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("fallback table %s: unsupported extension", path)
	}
}

func parseYAML(b []byte) (Table, error) {
	t := Table{}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parse fallback yaml: %w", err)
	}
	return t, nil
}

var xlsxColumns = []string{"state", "crop", "market", "variety", "min_price", "max_price", "modal_price"}

// loadXLSX reads the first sheet. Row 1 is a header naming the columns in any
// order; blank rows are skipped.
func loadXLSX(path string) (Table, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", path)
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty sheet", path)
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range xlsxColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	t := Table{}
	for n, row := range rows[1:] {
		cell := func(col string) string {
			if i := idx[col]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		state, crop := cell("state"), cell("crop")
		if state == "" && crop == "" {
			continue
		}
		var nums [3]float64
		for i, col := range xlsxColumns[4:] {
			v, err := strconv.ParseFloat(cell(col), 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %s: %w", path, n+2, col, err)
			}
			nums[i] = v
		}
		t.add(state, crop, PriceRow{
			Market: cell("market"), Variety: cell("variety"),
			MinPrice: nums[0], MaxPrice: nums[1], ModalPrice: nums[2],
		})
	}
	return t, nil
}

func (t Table) add(state, crop string, r PriceRow) {
	if t[state] == nil {
		t[state] = map[string][]PriceRow{}
	}
	t[state][crop] = append(t[state][crop], r)
}

// Lookup returns a copy of the rows for (state, crop); unknown pairs give an
// empty, non-nil slice. Keys are matched exactly.
func (t Table) Lookup(state, crop string) []PriceRow {
	rows := t[state][crop]
	out := make([]PriceRow, len(rows))
	copy(out, rows)
	return out
}

// Entities flattens the table for seeding, sorted by state, crop, market.
func (t Table) Entities() []entities.MarketPrice {
	var out []entities.MarketPrice
	for state, crops := range t {
		for crop, rows := range crops {
			for _, r := range rows {
				out = append(out, r.Entity(state, crop))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.State != b.State {
			return a.State < b.State
		}
		if a.CropName != b.CropName {
			return a.CropName < b.CropName
		}
		return a.Market < b.Market
	})
	return out
}
