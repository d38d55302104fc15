package hospital

// Snapshot is one monitor sample.
type Snapshot struct {
	Time           float64
	QueueFast      int
	QueueMain      int
	UtilFastDoctor float64
	UtilFastNurse  float64
	UtilMainDoctor float64
	UtilMainNurse  float64
	UtilBeds       float64
}

// Series is the append-only monitor output as parallel sequences.
// All slices always have the same length.
type Series struct {
	Times          []float64 `yaml:"times"`
	QueueFast      []int     `yaml:"queue_fast"`
	QueueMain      []int     `yaml:"queue_main"`
	UtilFastDoctor []float64 `yaml:"util_fast_doctor"`
	UtilFastNurse  []float64 `yaml:"util_fast_nurse"`
	UtilMainDoctor []float64 `yaml:"util_ed_doctor"`
	UtilMainNurse  []float64 `yaml:"util_ed_nurse"`
	UtilBeds       []float64 `yaml:"util_beds"`
}

// Append adds one snapshot to every sequence.
func (s *Series) Append(snap Snapshot) {
	s.Times = append(s.Times, snap.Time)
	s.QueueFast = append(s.QueueFast, snap.QueueFast)
	s.QueueMain = append(s.QueueMain, snap.QueueMain)
	s.UtilFastDoctor = append(s.UtilFastDoctor, snap.UtilFastDoctor)
	s.UtilFastNurse = append(s.UtilFastNurse, snap.UtilFastNurse)
	s.UtilMainDoctor = append(s.UtilMainDoctor, snap.UtilMainDoctor)
	s.UtilMainNurse = append(s.UtilMainNurse, snap.UtilMainNurse)
	s.UtilBeds = append(s.UtilBeds, snap.UtilBeds)
}

// Len returns the number of snapshots.
func (s *Series) Len() int {
	return len(s.Times)
}

// At returns snapshot i. Panics if i is out of range.
func (s *Series) At(i int) Snapshot {
	return Snapshot{
		Time:           s.Times[i],
		QueueFast:      s.QueueFast[i],
		QueueMain:      s.QueueMain[i],
		UtilFastDoctor: s.UtilFastDoctor[i],
		UtilFastNurse:  s.UtilFastNurse[i],
		UtilMainDoctor: s.UtilMainDoctor[i],
		UtilMainNurse:  s.UtilMainNurse[i],
		UtilBeds:       s.UtilBeds[i],
	}
}

// Utilizations returns the five utilization sequences keyed by pool name.
func (s *Series) Utilizations() map[string][]float64 {
	return map[string][]float64{
		PoolFastDoctor: s.UtilFastDoctor,
		PoolFastNurse:  s.UtilFastNurse,
		PoolMainDoctor: s.UtilMainDoctor,
		PoolMainNurse:  s.UtilMainNurse,
		PoolBeds:       s.UtilBeds,
	}
}
