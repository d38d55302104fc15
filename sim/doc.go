// Package sim provides the discrete-event simulation engine for edsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the Process interface and the (time, seq) ordered event heap
//   - simulator.go: the virtual clock and the Run loop
//   - resource.go: capacity-bounded pools with FIFO waiters
//
// # Architecture
//
// The sim package knows nothing about hospitals. Models live in sub-packages:
//   - sim/hospital/: the emergency-department patient-flow model and its Run orchestrator
//   - sim/report/: summary statistics, tables, charts and file exports of a finished run
//
// # Execution Model
//
// Processes are cooperative. Resume runs one step of a process to its next
// suspension point: it either schedules its own continuation with
// ScheduleAfter or parks on a ResourcePool and is rescheduled by Release.
// Only one process executes at a time, so no state in this package is locked.
//
// Randomness is drawn from PartitionedRNG, which hands each subsystem an
// isolated stream derived from a single SimulationKey. Same key, same run.
package sim
