package ai

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// SizeGate selects which remaining ship size gates the random search.
type SizeGate uint8

const (
	SizeGateNone SizeGate = iota
	SizeGateLargest
	SizeGateSmallest
)

// Policy parametrizes the search half of the engine. Tracking after a hit is
// the same for every policy.
type Policy struct {
	Name string
	Gate SizeGate
	// GateMin disables the gate while the chosen size is GateMin or less.
	GateMin int
	// GateCap clamps the gate size; 0 leaves it unclamped.
	GateCap int
	// Probes bounds how many random unknown cells are tested against the
	// gate. 0 tests every unknown cell.
	Probes int
	// Parity tries checkerboard cells before plain uniform sampling.
	Parity bool
}

var (
	PolicyParity = Policy{
		Name:   "parity",
		Gate:   SizeGateNone,
		Parity: true,
	}
	PolicySmallestGate = Policy{
		Name:    "smallest",
		Gate:    SizeGateSmallest,
		GateMin: 2,
		Probes:  50,
		Parity:  true,
	}
	PolicyLargestGate = Policy{
		Name:    "largest",
		Gate:    SizeGateLargest,
		GateMin: 2,
		GateCap: 3,
		Parity:  true,
	}
	PolicyUniform = Policy{
		Name: "uniform",
		Gate: SizeGateNone,
	}
)

var DefaultPolicy = PolicyLargestGate

func Policies() []Policy {
	return []Policy{PolicyLargestGate, PolicySmallestGate, PolicyParity, PolicyUniform}
}

func PolicyByName(name string) (Policy, error) {
	for _, p := range Policies() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Policy{}, cerr.ErrUnknownPolicy(name)
}

// gateSize picks the ship length used to reject cramped cells, or 0 when
// the search should not be gated.
func (p Policy) gateSize(remaining []int) int {
	if p.Gate == SizeGateNone || len(remaining) == 0 {
		return 0
	}

	size := remaining[0]
	for _, s := range remaining[1:] {
		if p.Gate == SizeGateLargest && s > size {
			size = s
		}
		if p.Gate == SizeGateSmallest && s < size {
			size = s
		}
	}

	if size <= p.GateMin {
		return 0
	}
	if p.GateCap > 0 && size > p.GateCap {
		size = p.GateCap
	}
	return size
}
