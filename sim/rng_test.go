package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// GIVEN two RNGs from the same key
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	// THEN the same subsystem yields the same sequence
	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemRouting).Float64()
		v2 := rng2.ForSubsystem(SubsystemRouting).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// GIVEN draws from the service stream
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemService).Float64()
	}

	// WHEN the routing stream is read
	aRoutingFirst := rngA.ForSubsystem(SubsystemRouting).Float64()

	// THEN it is unaffected by the service draws
	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemRouting).Float64()
	if aRoutingFirst != expectedFirst {
		t.Errorf("routing first value = %v, want %v (isolation broken)", aRoutingFirst, expectedFirst)
	}
}

func TestPartitionedRNG_ArrivalsUseMasterSeed(t *testing.T) {
	seed := int64(42)
	arrivals := NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemArrivals)
	directRNG := newRandFromSeed(seed)

	for i := 0; i < 10; i++ {
		got := arrivals.Float64()
		want := directRNG.Float64()
		if got != want {
			t.Errorf("Value %d: arrivals RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	rng1 := rng.ForSubsystem(SubsystemService)
	rng2 := rng.ForSubsystem(SubsystemService)

	if rng1 != rng2 {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	if rng.Key() != SimulationKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}

	rng.ForSubsystem(SubsystemArrivals)

	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

// === fnv1a64 Tests ===

func TestFnv1a64_Collision(t *testing.T) {
	names := []string{SubsystemArrivals, SubsystemRouting, SubsystemService, ""}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

// === Variates Tests ===

func TestVariates_SameSeedSameSequence(t *testing.T) {
	// GIVEN two variate sources from the same key
	a := NewPartitionedRNG(NewSimulationKey(7)).Variates(SubsystemService)
	b := NewPartitionedRNG(NewSimulationKey(7)).Variates(SubsystemService)

	// WHEN the same call sequence is made on both
	for i := 0; i < 50; i++ {
		// THEN the samples are identical
		require.Equal(t, a.Exponential(10), b.Exponential(10), "exponential draw %d", i)
		require.Equal(t, a.NormalFloor(20, 5, 5), b.NormalFloor(20, 5, 5), "normal draw %d", i)
		require.Equal(t, a.Bernoulli(0.3), b.Bernoulli(0.3), "bernoulli draw %d", i)
	}
}

func TestVariates_Exponential_NonNegativeWithMean(t *testing.T) {
	v := NewVariates(newRandFromSeed(1))
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		x := v.Exponential(10)
		require.GreaterOrEqual(t, x, 0.0)
		sum += x
	}
	assert.InDelta(t, 10.0, sum/n, 0.5)
}

func TestVariates_NormalFloor_ClampsToFloor(t *testing.T) {
	v := NewVariates(newRandFromSeed(3))
	// mean well below the floor: almost every raw sample is clamped
	clamped := 0
	for i := 0; i < 1000; i++ {
		x := v.NormalFloor(1, 3, 10)
		require.GreaterOrEqual(t, x, 10.0)
		if x == 10 {
			clamped++
		}
	}
	assert.Greater(t, clamped, 990)
}

func TestVariates_NormalFloor_ZeroStdDevIsMean(t *testing.T) {
	v := NewVariates(newRandFromSeed(3))
	assert.Equal(t, 20.0, v.NormalFloor(20, 0, 5))
}

func TestVariates_Bernoulli_Extremes(t *testing.T) {
	v := NewVariates(newRandFromSeed(9))
	for i := 0; i < 100; i++ {
		assert.False(t, v.Bernoulli(0))
		assert.True(t, v.Bernoulli(1))
	}
}

func TestNewVariates_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "NewVariates: rng must not be nil", func() {
		NewVariates(nil)
	})
}

// === Benchmark ===

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemService)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemService)
	}
}

// === Helper ===

// newRandFromSeed creates a *rand.Rand with the given seed
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
