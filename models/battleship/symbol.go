package battleship

type Symbol byte

// Display symbols shared by both board projections.
const (
	SymbolEmpty          Symbol = 'O'
	SymbolMiss           Symbol = '.'
	SymbolHit            Symbol = '*'
	SymbolSunk           Symbol = '#'
	SymbolVerticalShip   Symbol = '|'
	SymbolHorizontalShip Symbol = '-'
)

func (s Symbol) String() string {
	return string(rune(s))
}

// View is a raw board projection, indexed [row][col].
type View [][]Symbol

func NewView(size int) View {
	view := make(View, size)
	for i := 0; i < size; i++ {
		view[i] = make([]Symbol, size)
		for j := range view[i] {
			view[i][j] = SymbolEmpty
		}
	}
	return view
}

func (v View) Clone() View {
	out := make(View, len(v))
	for i, row := range v {
		out[i] = append([]Symbol(nil), row...)
	}
	return out
}

func (v View) At(off Offset) Symbol {
	return v[off.Row][off.Col]
}

// Find returns every offset holding sym, row-major.
func (v View) Find(sym Symbol) []Offset {
	var found []Offset
	for r, row := range v {
		for c, s := range row {
			if s == sym {
				found = append(found, Offset{Row: r, Col: c})
			}
		}
	}
	return found
}

// NewlySunk returns the offsets that are Sunk in v but were not Sunk in prev.
// A nil prev yields no diff.
func (v View) NewlySunk(prev View) []Offset {
	if prev == nil {
		return nil
	}

	var diff []Offset
	for r, row := range v {
		for c, s := range row {
			if s == SymbolSunk && prev[r][c] != SymbolSunk {
				diff = append(diff, Offset{Row: r, Col: c})
			}
		}
	}
	return diff
}

// Legend mirrors the symbols above for console output.
func Legend() string {
	return "Legend: Ships " + SymbolVerticalShip.String() + " or " + SymbolHorizontalShip.String() +
		"   Empty " + SymbolEmpty.String() +
		"   Miss " + SymbolMiss.String() +
		"   Hit " + SymbolHit.String() +
		"   Sunk " + SymbolSunk.String()
}
