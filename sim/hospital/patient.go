package hospital

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/edsim/edsim/sim"
)

// Track is the department a patient is assigned at arrival. It never changes.
type Track int

const (
	TrackMain Track = iota
	TrackFast
)

func (t Track) String() string {
	switch t {
	case TrackFast:
		return "fast_track"
	case TrackMain:
		return "main"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// journeyState is the patient's position in its activity sequence.
type journeyState int

const (
	stateArrived journeyState = iota
	stateConsult
	stateLab
	stateLabWait
	stateReview
	stateMedication
	stateAdmit
	stateDone
)

var stateNames = map[journeyState]string{
	stateArrived:    "arrived",
	stateConsult:    "consult",
	stateLab:        "lab",
	stateLabWait:    "lab_wait",
	stateReview:     "review",
	stateMedication: "medication",
	stateAdmit:      "admit",
	stateDone:       "done",
}

func (s journeyState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// phase tracks progress within one activity.
type phase int

const (
	phaseStart   phase = iota // about to request the resource, if any
	phaseWaiting              // parked in a pool's wait list
	phaseHolding              // timed activity in progress
)

// StepRecord describes one activity of a completed journey.
type StepRecord struct {
	Activity  string  `yaml:"activity"`
	Resource  string  `yaml:"resource,omitempty"`
	Requested float64 `yaml:"requested"`
	Started   float64 `yaml:"started"`
	Finished  float64 `yaml:"finished"`
}

// Journey is the record of one patient who reached the terminal state.
type Journey struct {
	ID         string       `yaml:"id"`
	Track      string       `yaml:"track"`
	Arrival    float64      `yaml:"arrival"`
	Completion float64      `yaml:"completion"`
	Steps      []StepRecord `yaml:"steps"`
}

// Patient is one patient's path through the department, run as a
// cooperative state machine. Every Resume advances it to its next suspension
// point: a timed activity or a wait on a resource pool.
type Patient struct {
	id      string
	arrival float64
	track   Track
	m       *model

	state journeyState
	phase phase
	held  *sim.Grant
	step  StepRecord
	steps []StepRecord
}

func newPatient(m *model, id string, arrival float64, track Track) *Patient {
	return &Patient{id: id, arrival: arrival, track: track, m: m, state: stateArrived}
}

// Name returns the patient ID.
func (p *Patient) Name() string { return p.id }

// Track returns the assigned track.
func (p *Patient) Track() Track { return p.track }

// Resume implements sim.Process. A unit still held when an error occurs is
// released before returning.
func (p *Patient) Resume(s *sim.Simulator) (err error) {
	defer func() {
		if err != nil && p.held != nil {
			if rerr := p.releaseHeld(); rerr != nil {
				logrus.Warnf("%s: release after failure: %v", p.id, rerr)
			}
		}
	}()

	for {
		switch p.phase {
		case phaseStart:
			if p.state == stateArrived {
				p.advance()
				continue
			}
			if p.state == stateDone {
				p.finish(s)
				return nil
			}
			p.step = StepRecord{Activity: p.state.String(), Requested: s.Now()}
			pool := p.pool()
			if pool == nil {
				return p.hold(s)
			}
			p.step.Resource = pool.Name()
			g, ok := pool.Acquire(p)
			p.held = g
			if !ok {
				p.phase = phaseWaiting
				return nil
			}
			return p.hold(s)
		case phaseWaiting:
			if !p.held.Active() {
				return fmt.Errorf("%s resumed while still queued on %s", p.id, p.held.Pool().Name())
			}
			return p.hold(s)
		case phaseHolding:
			p.step.Finished = s.Now()
			p.steps = append(p.steps, p.step)
			if err := p.releaseHeld(); err != nil {
				return err
			}
			p.advance()
			p.phase = phaseStart
		}
	}
}

// hold starts the timed part of the current activity.
func (p *Patient) hold(s *sim.Simulator) error {
	p.phase = phaseHolding
	p.step.Started = s.Now()
	dist := p.duration()
	d := p.m.service.NormalFloor(dist.Mean, dist.StdDev, dist.Floor)
	logrus.Tracef("[t=%9.3f] %s %s for %.3f", s.Now(), p.id, p.state, d)
	return s.ScheduleAfter(d, p)
}

func (p *Patient) releaseHeld() error {
	if p.held == nil {
		return nil
	}
	g := p.held
	p.held = nil
	return g.Pool().Release(g)
}

// advance moves to the next activity, drawing branch decisions as they come up.
func (p *Patient) advance() {
	probs := p.m.cfg.Probabilities
	switch p.state {
	case stateArrived:
		p.state = stateConsult
	case stateConsult:
		labProb := probs.MainLab
		if p.track == TrackFast {
			labProb = probs.FastLab
		}
		if p.m.routing.Bernoulli(labProb) {
			p.state = stateLab
		} else {
			p.state = p.treatment()
		}
	case stateLab:
		p.state = stateLabWait
	case stateLabWait:
		p.state = stateReview
	case stateReview:
		p.state = p.treatment()
	case stateMedication, stateAdmit:
		p.state = stateDone
	}
}

// treatment picks the final activity of the journey.
func (p *Patient) treatment() journeyState {
	if p.track == TrackMain && p.m.routing.Bernoulli(p.m.cfg.Probabilities.Admit) {
		return stateAdmit
	}
	return stateMedication
}

// pool returns the resource the current activity needs, or nil for a plain delay.
func (p *Patient) pool() *sim.ResourcePool {
	h := p.m.hospital
	switch p.state {
	case stateConsult, stateReview:
		return h.doctor(p.track)
	case stateLab, stateMedication:
		return h.nurse(p.track)
	case stateAdmit:
		return h.Beds
	default:
		return nil
	}
}

func (p *Patient) duration() Distribution {
	a := p.m.cfg.Activities
	switch p.state {
	case stateConsult:
		return a.Consult
	case stateReview:
		return a.Review
	case stateMedication:
		return a.Medication
	case stateAdmit:
		return a.Admit
	case stateLab:
		if p.track == TrackFast {
			return a.FastLab
		}
		return a.MainLab
	case stateLabWait:
		if p.track == TrackFast {
			return a.FastLabWait
		}
		return a.MainLabWait
	default:
		panic(fmt.Sprintf("no duration for state %s", p.state))
	}
}

func (p *Patient) finish(s *sim.Simulator) {
	wait := s.Now() - p.arrival
	p.m.result.WaitTimes = append(p.m.result.WaitTimes, wait)
	p.m.result.Journeys = append(p.m.result.Journeys, Journey{
		ID:         p.id,
		Track:      p.track.String(),
		Arrival:    p.arrival,
		Completion: s.Now(),
		Steps:      p.steps,
	})
	p.m.result.Completed++
	logrus.Debugf("[t=%9.3f] %s (%s) done after %.3f", s.Now(), p.id, p.track, wait)
}
