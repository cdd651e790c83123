// Package pmsp models the unrelated-parallel-machine scheduling problem
// with sequence-dependent setup times and job release times, and provides
// the schedule decoder and lower-bound estimator that operate on it.
package pmsp

import (
	"encoding/json"
	"os"

	"github.com/schedkit/pmsp/internal/errors"
)

// SetupMatrix holds the sequence-dependent setup times between jobs.
// Cells may be undefined (the diagonal always is); undefined cells are
// treated as zero wherever a setup time is consumed.
type SetupMatrix struct {
	n       int
	values  []float64
	defined []bool
}

// NewSetupMatrix returns an n x n matrix with every cell undefined.
func NewSetupMatrix(n int) *SetupMatrix {
	return &SetupMatrix{
		n:       n,
		values:  make([]float64, n*n),
		defined: make([]bool, n*n),
	}
}

// Set defines the setup time incurred when job j follows job i.
func (m *SetupMatrix) Set(i, j int, v float64) {
	m.values[i*m.n+j] = v
	m.defined[i*m.n+j] = true
}

// At returns the setup time from i to j and whether the cell is defined.
func (m *SetupMatrix) At(i, j int) (float64, bool) {
	idx := i*m.n + j
	return m.values[idx], m.defined[idx]
}

// AtOrZero returns the setup time from i to j, falling back to 0 for
// undefined cells. This is the uniform fallback rule used by both the
// decoder and the lower bound.
func (m *SetupMatrix) AtOrZero(i, j int) float64 {
	idx := i*m.n + j
	if !m.defined[idx] {
		return 0
	}
	return m.values[idx]
}

// Len returns the matrix dimension.
func (m *SetupMatrix) Len() int { return m.n }

// Instance is a validated problem instance. It is never mutated by the
// solver; treat it as read-only after construction.
type Instance struct {
	Jobs            int
	Machines        int
	ProcessingTimes []float64
	ReadyTimes      []float64
	Setup           *SetupMatrix
}

// NewInstance builds and validates an instance.
func NewInstance(jobs, machines int, processing, ready []float64, setup *SetupMatrix) (*Instance, error) {
	inst := &Instance{
		Jobs:            jobs,
		Machines:        machines,
		ProcessingTimes: processing,
		ReadyTimes:      ready,
		Setup:           setup,
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Validate checks the structural invariants of the instance. Any
// violation is reported as an invalid-instance error and must prevent
// core computation on the data.
func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.E(errors.KindInvalidInstance, "instance is nil")
	}
	if inst.Jobs < 0 {
		return errors.Ef(errors.KindInvalidInstance, "jobs must be >= 0 (got %d)", inst.Jobs)
	}
	if inst.Machines < 1 {
		return errors.Ef(errors.KindInvalidInstance, "machines must be >= 1 (got %d)", inst.Machines)
	}
	if len(inst.ProcessingTimes) != inst.Jobs {
		return errors.Ef(errors.KindInvalidInstance,
			"processing_times length must be %d (got %d)", inst.Jobs, len(inst.ProcessingTimes))
	}
	if len(inst.ReadyTimes) != inst.Jobs {
		return errors.Ef(errors.KindInvalidInstance,
			"ready_times length must be %d (got %d)", inst.Jobs, len(inst.ReadyTimes))
	}
	for i, p := range inst.ProcessingTimes {
		if p < 0 {
			return errors.Ef(errors.KindInvalidInstance, "processing_times[%d] must be >= 0 (got %g)", i, p)
		}
	}
	for i, r := range inst.ReadyTimes {
		if r < 0 {
			return errors.Ef(errors.KindInvalidInstance, "ready_times[%d] must be >= 0 (got %g)", i, r)
		}
	}
	if inst.Setup == nil {
		return errors.E(errors.KindInvalidInstance, "setup matrix is nil")
	}
	if inst.Setup.Len() != inst.Jobs {
		return errors.Ef(errors.KindInvalidInstance,
			"setup matrix must be %dx%d (got %dx%d)", inst.Jobs, inst.Jobs, inst.Setup.Len(), inst.Setup.Len())
	}
	for i := 0; i < inst.Jobs; i++ {
		for j := 0; j < inst.Jobs; j++ {
			if s, ok := inst.Setup.At(i, j); ok && s < 0 {
				return errors.Ef(errors.KindInvalidInstance, "setup_times[%d][%d] must be >= 0 (got %g)", i, j, s)
			}
		}
	}
	return nil
}

// instanceFile is the on-disk JSON schema. Undefined setup cells
// (including the diagonal) are encoded as null.
type instanceFile struct {
	Jobs            int          `json:"jobs"`
	Machines        int          `json:"machines"`
	ProcessingTimes []float64    `json:"processing_times"`
	ReadyTimes      []float64    `json:"ready_times"`
	SetupTimes      [][]*float64 `json:"setup_times"`
}

// Parse decodes and validates an instance from its JSON representation.
func Parse(data []byte) (*Instance, error) {
	var f instanceFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.KindInvalidInstance, err, "decoding instance")
	}
	if len(f.SetupTimes) != f.Jobs {
		return nil, errors.Ef(errors.KindInvalidInstance,
			"setup_times must have %d rows (got %d)", f.Jobs, len(f.SetupTimes))
	}
	setup := NewSetupMatrix(f.Jobs)
	for i, row := range f.SetupTimes {
		if len(row) != f.Jobs {
			return nil, errors.Ef(errors.KindInvalidInstance,
				"setup_times[%d] must have %d columns (got %d)", i, f.Jobs, len(row))
		}
		for j, cell := range row {
			if cell != nil {
				setup.Set(i, j, *cell)
			}
		}
	}
	return NewInstance(f.Jobs, f.Machines, f.ProcessingTimes, f.ReadyTimes, setup)
}

// Load reads and parses an instance file.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.KindInvalidInstance, err, "reading instance file")
	}
	return Parse(data)
}
