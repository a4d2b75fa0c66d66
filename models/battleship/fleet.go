package battleship

type ShipSpec struct {
	Name string
	Size int
}

// StandardFleet is the classic five-ship fleet, 17 cells in total.
var StandardFleet = []ShipSpec{
	{Name: "Aircraft Carrier", Size: 5},
	{Name: "Battleship", Size: 4},
	{Name: "Submarine", Size: 3},
	{Name: "Cruiser", Size: 3},
	{Name: "Patrol Boat", Size: 2},
}

// FleetSizes returns the ship sizes of fleet in order.
func FleetSizes(fleet []ShipSpec) []int {
	sizes := make([]int, len(fleet))
	for i, spec := range fleet {
		sizes[i] = spec.Size
	}
	return sizes
}
