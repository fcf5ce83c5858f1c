package parser

// extentOf returns the last row and column (1-based) holding a non-empty
// cell, or zeros when every cell is empty.
func extentOf(rows [][]string) (lastRow, lastCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > lastRow {
				lastRow = rowIdx + 1
			}
			if colIdx+1 > lastCol {
				lastCol = colIdx + 1
			}
		}
	}
	return
}
