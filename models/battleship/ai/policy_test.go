package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyByName(t *testing.T) {
	tests := []struct {
		input    string
		expected Policy
		wantErr  bool
	}{
		{input: "largest", expected: PolicyLargestGate},
		{input: "SMALLEST", expected: PolicySmallestGate},
		{input: " parity ", expected: PolicyParity},
		{input: "uniform", expected: PolicyUniform},
		{input: "psychic", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			policy, err := PolicyByName(test.input)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, policy)
		})
	}

	assert.Equal(t, PolicyLargestGate, DefaultPolicy)
}

func TestGateSize(t *testing.T) {
	uncapped := Policy{Name: "uncapped", Gate: SizeGateLargest, GateMin: 2}

	tests := []struct {
		name      string
		policy    Policy
		remaining []int
		expected  int
	}{
		{name: "largest is capped", policy: PolicyLargestGate, remaining: []int{5, 4, 3, 3, 2}, expected: 3},
		{name: "largest off at patrol boat", policy: PolicyLargestGate, remaining: []int{2}, expected: 0},
		{name: "smallest off while patrol boat floats", policy: PolicySmallestGate, remaining: []int{5, 4, 3, 3, 2}, expected: 0},
		{name: "smallest after patrol boat", policy: PolicySmallestGate, remaining: []int{5, 4, 3}, expected: 3},
		{name: "no gate", policy: PolicyParity, remaining: []int{5, 4}, expected: 0},
		{name: "nothing left", policy: PolicyLargestGate, remaining: nil, expected: 0},
		{name: "no cap", policy: uncapped, remaining: []int{3, 5}, expected: 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.policy.gateSize(test.remaining))
		})
	}
}
