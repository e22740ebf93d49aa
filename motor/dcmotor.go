package motor

import "github.com/zeu5/motor-rl-viz/types"

// Params of a permanently excited DC motor
type Params struct {
	R   float64 // armature resistance in ohm
	L   float64 // armature inductance in henry
	Psi float64 // excitation flux in voltseconds
	J   float64 // rotor inertia in kgm^2
	B   float64 // viscous friction constant
	Tau float64 // sampling time in seconds
}

func DefaultParams() Params {
	return Params{
		R:   0.78,
		L:   6.3e-3,
		Psi: 0.165,
		J:   0.017,
		B:   1e-4,
		Tau: 1e-4,
	}
}

var (
	stateNames = []string{"omega", "torque", "i", "u"}
	stateUnits = []string{"1/s", "Nm", "A", "V"}
)

// DCMotor simulates a permanently excited DC motor with forward Euler
// integration of the armature circuit and the mechanical equation.
// The state vector (omega, torque, i, u) is emitted normalized by the
// state limits.
type DCMotor struct {
	params  Params
	limits  []float64
	nominal []float64
	levels  []float64 // voltage levels of the discrete action space

	omega   float64
	current float64
}

var _ types.PhysicalSystem = &DCMotor{}

func NewDCMotor(params Params) *DCMotor {
	uLimit := 60.0
	iLimit := 75.0
	omegaLimit := 400.0
	torqueLimit := params.Psi * iLimit

	m := &DCMotor{
		params: params,
		limits: []float64{omegaLimit, torqueLimit, iLimit, uLimit},
		levels: []float64{-uLimit, 0, uLimit},
	}
	m.nominal = make([]float64, len(m.limits))
	for i, l := range m.limits {
		m.nominal[i] = 0.8 * l
	}
	return m
}

// Reset puts the motor back to standstill
func (m *DCMotor) Reset() []float64 {
	m.omega = 0
	m.current = 0
	return m.state(0)
}

// Step applies the armature voltage u for one sampling interval
func (m *DCMotor) Step(u float64) []float64 {
	di := (u - m.params.Psi*m.omega - m.params.R*m.current) / m.params.L
	dOmega := (m.params.Psi*m.current - m.params.B*m.omega) / m.params.J
	m.current += m.params.Tau * di
	m.omega += m.params.Tau * dOmega
	return m.state(u)
}

func (m *DCMotor) state(u float64) []float64 {
	torque := m.params.Psi * m.current
	return []float64{
		m.omega / m.limits[0],
		torque / m.limits[1],
		m.current / m.limits[2],
		u / m.limits[3],
	}
}

func (m *DCMotor) StateNames() []string {
	return stateNames
}

func (m *DCMotor) StateUnits() []string {
	return stateUnits
}

func (m *DCMotor) Limits() []float64 {
	return m.limits
}

func (m *DCMotor) Nominal() []float64 {
	return m.nominal
}

func (m *DCMotor) Tau() float64 {
	return m.params.Tau
}

func (m *DCMotor) ActionDim() int {
	return 1
}

func (m *DCMotor) StateIndex(name string) int {
	for i, n := range stateNames {
		if n == name {
			return i
		}
	}
	return -1
}

// VoltageLevels of the discrete three-level converter
func (m *DCMotor) VoltageLevels() []float64 {
	return m.levels
}
