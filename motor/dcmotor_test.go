package motor

import (
	"math"
	"testing"
)

func TestDCMotorReset(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	state := m.Reset()
	for i, s := range state {
		if s != 0 {
			t.Errorf("expected state %s at standstill, got %f", stateNames[i], s)
		}
	}
}

func TestDCMotorStepBuildsCurrent(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	m.Reset()
	state := m.Step(60)
	iIdx := m.StateIndex("i")
	if state[iIdx] <= 0 {
		t.Errorf("expected a positive current after applying a positive voltage, got %f", state[iIdx])
	}
}

func TestDCMotorAccelerates(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	m.Reset()
	var state []float64
	for i := 0; i < 1000; i++ {
		state = m.Step(60)
	}
	omegaIdx := m.StateIndex("omega")
	if state[omegaIdx] <= 0 {
		t.Errorf("expected the motor to accelerate under positive voltage, got omega %f", state[omegaIdx])
	}
}

func TestDCMotorStateIndex(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	for i, name := range m.StateNames() {
		if m.StateIndex(name) != i {
			t.Errorf("expected index %d for state %s, got %d", i, name, m.StateIndex(name))
		}
	}
	if m.StateIndex("flux") != -1 {
		t.Errorf("expected -1 for an unknown state")
	}
}

func TestDCMotorVectorsConsistent(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	n := len(m.StateNames())
	if len(m.StateUnits()) != n || len(m.Limits()) != n || len(m.Nominal()) != n {
		t.Errorf("expected all state vectors of length %d", n)
	}
	for i, l := range m.Limits() {
		if m.Nominal()[i] >= l {
			t.Errorf("expected the nominal value below the limit for state %s", m.StateNames()[i])
		}
	}
}

func TestSineReference(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	rg := NewSineReference(m, "omega", 0.5, 10, 0.1)

	mask := rg.ReferencedStates()
	if !mask[m.StateIndex("omega")] {
		t.Errorf("expected omega referenced")
	}
	for i, referenced := range mask {
		if i != m.StateIndex("omega") && referenced {
			t.Errorf("expected only omega referenced")
		}
	}

	ref := rg.Next(0)
	if math.Abs(ref[m.StateIndex("omega")]-0.1) > 1e-12 {
		t.Errorf("expected the offset at k=0, got %f", ref[m.StateIndex("omega")])
	}
	// quarter period of a 10 Hz sine at tau=1e-4 is 250 steps
	ref = rg.Next(250)
	if math.Abs(ref[m.StateIndex("omega")]-0.6) > 1e-9 {
		t.Errorf("expected offset+amplitude at the quarter period, got %f", ref[m.StateIndex("omega")])
	}
}

func TestSineReferenceUnknownState(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic for an unknown reference state")
		}
	}()
	NewSineReference(m, "flux", 0.5, 10, 0)
}

func TestWienerReferenceBounds(t *testing.T) {
	m := NewDCMotor(DefaultParams())
	rg := NewWienerReference(m, "omega", 0.3)
	idx := m.StateIndex("omega")
	for k := 0; k < 1000; k++ {
		ref := rg.Next(k)
		if ref[idx] < -1 || ref[idx] > 1 {
			t.Fatalf("expected the reference bounded to [-1, 1], got %f at step %d", ref[idx], k)
		}
	}
	rg.Reset()
	if rg.value != 0 {
		t.Errorf("expected reset to return the walk to 0")
	}
}

func TestWeightedSumOfErrors(t *testing.T) {
	rf := NewWeightedSumOfErrors([]float64{1, 0, 0, 0})

	if r := rf.Reward([]float64{0.5, 0, 0, 0}, []float64{0.5, 0, 0, 0}, false); r != 0 {
		t.Errorf("expected 0 reward for perfect tracking, got %f", r)
	}
	if r := rf.Reward([]float64{1, 0, 0, 0}, []float64{-1, 0, 0, 0}, false); r != -1 {
		t.Errorf("expected the lower bound for the largest error, got %f", r)
	}
	if r := rf.Reward([]float64{0, 0, 0, 0}, []float64{0, 0, 0, 0}, true); r != -1 {
		t.Errorf("expected the lower bound on limit violation, got %f", r)
	}

	rmin, rmax := rf.RewardRange()
	if rmin != -1 || rmax != 0 {
		t.Errorf("expected the reward range [-1, 0], got [%f, %f]", rmin, rmax)
	}
}
