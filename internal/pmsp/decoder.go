package pmsp

// Slot is one scheduled job on a machine.
type Slot struct {
	Job   int     `json:"job"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Schedule is the decoded result of an ordering: for each machine, its
// jobs in chronological order, plus the overall makespan.
type Schedule struct {
	Machines [][]Slot `json:"machines"`
	Makespan float64  `json:"makespan"`
}

// Decode turns an ordering of jobs into a concrete per-machine schedule.
//
// Jobs are placed strictly in the given order. Each job goes to the
// machine where it would finish earliest, accounting for the machine's
// free time, the setup after its previous job, and the job's ready
// time. Machines are scanned in index order and only a strictly smaller
// candidate finish replaces the current choice, so ties go to the
// lowest machine index. The function is deterministic and never
// reorders jobs; solution quality is entirely a property of the input
// ordering.
func Decode(inst *Instance, order []int) (*Schedule, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if err := ValidatePermutation(order, inst.Jobs); err != nil {
		return nil, err
	}

	freeTime := make([]float64, inst.Machines)
	lastJob := make([]int, inst.Machines)
	for m := range lastJob {
		lastJob[m] = -1
	}

	sched := &Schedule{Machines: make([][]Slot, inst.Machines)}
	for m := range sched.Machines {
		sched.Machines[m] = []Slot{}
	}

	for _, job := range order {
		bestMachine := -1
		bestStart := 0.0
		bestFinish := 0.0
		for m := 0; m < inst.Machines; m++ {
			ready := freeTime[m]
			if lastJob[m] >= 0 {
				ready += inst.Setup.AtOrZero(lastJob[m], job)
			}
			start := ready
			if r := inst.ReadyTimes[job]; r > start {
				start = r
			}
			finish := start + inst.ProcessingTimes[job]
			if bestMachine < 0 || finish < bestFinish {
				bestMachine = m
				bestStart = start
				bestFinish = finish
			}
		}

		freeTime[bestMachine] = bestFinish
		lastJob[bestMachine] = job
		sched.Machines[bestMachine] = append(sched.Machines[bestMachine], Slot{
			Job:   job,
			Start: bestStart,
			End:   bestFinish,
		})
		if bestFinish > sched.Makespan {
			sched.Makespan = bestFinish
		}
	}

	return sched, nil
}

// Evaluator computes makespans for orderings of a single instance,
// reusing its per-machine buffers across calls. It implements exactly
// the placement rule of Decode, minus the schedule construction, and is
// what the genetic solver calls once per candidate.
type Evaluator struct {
	inst     *Instance
	freeTime []float64
	lastJob  []int
}

// NewEvaluator validates the instance and returns an evaluator for it.
func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{
		inst:     inst,
		freeTime: make([]float64, inst.Machines),
		lastJob:  make([]int, inst.Machines),
	}, nil
}

// Makespan returns the makespan of decoding order. The caller must pass
// a valid permutation of the instance's jobs; the genetic operators
// preserve that invariant structurally, so no per-call validation is
// done here.
func (e *Evaluator) Makespan(order []int) float64 {
	inst := e.inst
	for m := 0; m < inst.Machines; m++ {
		e.freeTime[m] = 0
		e.lastJob[m] = -1
	}

	makespan := 0.0
	for _, job := range order {
		bestMachine := -1
		bestFinish := 0.0
		for m := 0; m < inst.Machines; m++ {
			ready := e.freeTime[m]
			if e.lastJob[m] >= 0 {
				ready += inst.Setup.AtOrZero(e.lastJob[m], job)
			}
			start := ready
			if r := inst.ReadyTimes[job]; r > start {
				start = r
			}
			finish := start + inst.ProcessingTimes[job]
			if bestMachine < 0 || finish < bestFinish {
				bestMachine = m
				bestFinish = finish
			}
		}
		e.freeTime[bestMachine] = bestFinish
		e.lastJob[bestMachine] = job
		if bestFinish > makespan {
			makespan = bestFinish
		}
	}
	return makespan
}
