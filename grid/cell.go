package grid

// CellKind is the content of one tile
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFood
	CellSnake
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellFood:
		return "food"
	case CellSnake:
		return "snake"
	default:
		return "unknown"
	}
}
