package mc

import (
	"context"
	"runtime"

	"github.com/arpitban/ljmc/internal/box"
	"github.com/arpitban/ljmc/internal/geom"
	"github.com/arpitban/ljmc/internal/metropolis"
	"github.com/arpitban/ljmc/internal/potential"
)

// Simulator owns one Markov chain over a box. The step loop is
// single-threaded; goroutines appear only in the initial energy sweep
// and in Ensemble.
type Simulator struct {
	box *box.Box
	lj  *potential.LennardJones
	rng Source

	accums    []Accumulator
	observers []Observer

	// live run state
	cfg        Config
	step       int
	maxDisp    float64
	trials     int
	accepts    int
	winTrials  int
	winAccepts int
	pairEnergy float64
	tail       float64
}

// New validates the model against the box and wires the three
// collaborators together. The simulator borrows the box and mutates
// its coordinates on accepted moves.
func New(b *box.Box, lj *potential.LennardJones, rng Source) (*Simulator, error) {
	if err := lj.ValidateForBox(b.Length); err != nil {
		return nil, err
	}
	return &Simulator{box: b, lj: lj, rng: rng}, nil
}

func (s *Simulator) AddAccumulator(a Accumulator) { s.accums = append(s.accums, a) }
func (s *Simulator) AddObserver(o Observer)       { s.observers = append(s.observers, o) }

// Start resets the chain for a run: reseeds the source, recomputes the
// full pair energy once and the tail correction once. Step advances
// from there.
func (s *Simulator) Start(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.step = 0
	s.maxDisp = cfg.MaxDisplacement
	s.trials, s.accepts = 0, 0
	s.winTrials, s.winAccepts = 0, 0
	s.rng.Seed(cfg.Seed)

	s.pairEnergy = s.lj.ChunkedTotalPairEnergy(s.box, runtime.NumCPU())
	s.tail = s.lj.TailCorrection(s.box.NumParticles(), s.box.Volume())

	for _, a := range s.accums {
		a.Reset()
	}
	return nil
}

// Step performs one trial move: pick a particle, displace it within
// the current maximum, wrap, and apply the Metropolis criterion to the
// energy change. Accepted moves commit the coordinate and fold the
// delta into the running pair energy. Every AdjustEvery trials the
// displacement is retuned and the window closes.
func (s *Simulator) Step() error {
	i := s.rng.Intn(s.box.NumParticles())
	old := s.box.Coords[i]

	trial := geom.Vec3{
		old[0] + s.rng.Range(-s.maxDisp, s.maxDisp),
		old[1] + s.rng.Range(-s.maxDisp, s.maxDisp),
		old[2] + s.rng.Range(-s.maxDisp, s.maxDisp),
	}
	trial = geom.Wrap(trial, s.box.Length)

	delta := s.lj.MoveDelta(s.box, i, trial)

	s.trials++
	s.winTrials++
	if metropolis.Accept(delta, s.cfg.Beta, s.rng) {
		s.box.Coords[i] = trial
		s.accepts++
		s.winAccepts++
		s.pairEnergy += delta
	}
	s.step++

	if s.step%s.cfg.AdjustEvery == 0 {
		d, t, a, err := metropolis.AdjustDisplacement(s.winTrials, s.winAccepts, s.maxDisp)
		if err != nil {
			return err
		}
		s.maxDisp, s.winTrials, s.winAccepts = d, t, a
	}
	return nil
}

// UnitEnergy is the current per-particle energy from the running pair
// sum plus the run's tail correction.
func (s *Simulator) UnitEnergy() float64 {
	return (s.pairEnergy + s.tail) / float64(s.box.NumParticles())
}

func (s *Simulator) Box() *box.Box            { return s.box }
func (s *Simulator) StepCount() int           { return s.step }
func (s *Simulator) MaxDisplacement() float64 { return s.maxDisp }
func (s *Simulator) PairEnergy() float64      { return s.pairEnergy }

// Acceptance is the cumulative acceptance ratio of the run so far.
func (s *Simulator) Acceptance() float64 {
	if s.trials == 0 {
		return 0
	}
	return float64(s.accepts) / float64(s.trials)
}

// Run executes cfg.Steps trial moves, sampling the unit energy every
// SampleEvery trials. Cancellation is checked between steps; a
// canceled run returns the partial result alongside ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.Start(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		SampleSteps: make([]int, 0, cfg.Steps/cfg.SampleEvery+1),
		Energies:    make([]float64, 0, cfg.Steps/cfg.SampleEvery+1),
		Metrics:     make(map[string]float64),
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		if err := s.Step(); err != nil {
			return nil, err
		}

		if s.step%cfg.SampleEvery == 0 {
			u := s.UnitEnergy()
			result.SampleSteps = append(result.SampleSteps, s.step)
			result.Energies = append(result.Energies, u)
			for _, a := range s.accums {
				a.Observe(u)
			}
			for _, o := range s.observers {
				o.OnSample(s.step, u)
			}
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	result.Trials = s.trials
	result.Accepts = s.accepts
	result.AcceptanceRate = s.Acceptance()
	result.MaxDisplacement = s.maxDisp
	result.PairEnergy = s.pairEnergy
	for _, a := range s.accums {
		result.Metrics[a.Name()] = a.Value()
	}
	result.Metrics["acceptance"] = s.Acceptance()
}
