package hospital

import (
	"fmt"

	"github.com/edsim/edsim/sim"
)

// ArrivalGenerator spawns the configured number of patients. The first one
// arrives when the generator starts; each later one follows an exponential
// inter-arrival delay.
type ArrivalGenerator struct {
	m       *model
	arrival *sim.Variates
	spawned int
}

func newArrivalGenerator(m *model, arrival *sim.Variates) *ArrivalGenerator {
	return &ArrivalGenerator{m: m, arrival: arrival}
}

// Name implements sim.Process.
func (g *ArrivalGenerator) Name() string { return "arrivals" }

// Spawned returns the number of patients created so far.
func (g *ArrivalGenerator) Spawned() int { return g.spawned }

// Resume spawns one patient and sleeps until the next arrival.
func (g *ArrivalGenerator) Resume(s *sim.Simulator) error {
	if g.spawned >= g.m.cfg.Patients {
		return nil
	}
	g.spawned++
	track := TrackMain
	if g.m.routing.Bernoulli(g.m.cfg.Probabilities.FastTrack) {
		track = TrackFast
	}
	s.Spawn(newPatient(g.m, fmt.Sprintf("patient-%d", g.spawned), s.Now(), track))
	g.m.result.Spawned = g.spawned

	if g.spawned == g.m.cfg.Patients {
		return nil
	}
	return s.ScheduleAfter(g.arrival.Exponential(g.m.cfg.ArrivalMean), g)
}
