package types

// Trace of an episode as the sequence of step records
type Trace struct {
	Steps []StepData `json:"steps"`
}

func NewTrace() *Trace {
	return &Trace{
		Steps: make([]StepData, 0),
	}
}

func (t *Trace) Append(d StepData) {
	t.Steps = append(t.Steps, d)
}

func (t *Trace) Len() int {
	return len(t.Steps)
}

func (t *Trace) Get(i int) (StepData, bool) {
	if i >= len(t.Steps) {
		return StepData{}, false
	}
	return t.Steps[i], true
}

func (t *Trace) Last() (StepData, bool) {
	if len(t.Steps) < 1 {
		return StepData{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}
