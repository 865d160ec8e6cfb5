package convert

type coord struct{ row, col int }

// Occupancy records the cells filled by earlier row spans.
// It only grows: a sheet keeps its occupancy across all of its tables.
type Occupancy map[coord]struct{}

func (o Occupancy) IsOccupied(row, col int) bool {
	_, ok := o[coord{row, col}]
	return ok
}

func (o Occupancy) MarkOccupied(row, col int) { o[coord{row, col}] = struct{}{} }
