package handbook

import "strings"

// Grid is the raw cell matrix of one sheet, as returned by excelize GetRows:
// rows of strings with no implicit header, possibly ragged on the right.
type Grid [][]string

// Cell returns the trimmed content of (row, col), or "" when the coordinate
// is outside the grid. Extractors treat "" as a blank cell.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Rows reports the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols reports the widest row of the grid. Header rows are often the widest,
// so this is the column bound extractors scan to.
func (g Grid) Cols() int {
	max := 0
	for _, r := range g {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// rowText joins a row's cells for content sniffing.
func (g Grid) rowText(row int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	return strings.Join(g[row], " ")
}

// findRowContaining returns the index of the first row whose joined text
// contains any of the markers, or -1 when no row matches.
func (g Grid) findRowContaining(markers ...string) int {
	for i := range g {
		text := g.rowText(i)
		for _, m := range markers {
			if strings.Contains(text, m) {
				return i
			}
		}
	}
	return -1
}
