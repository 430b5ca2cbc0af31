// Package processor contains the orchestration logic shared by the
// batch and interactive variants. It builds the pronunciation fetcher
// from CLI flags and drives batch runs or hands off to the GUI. This
// package serves as the coordinator between all other components.
package processor
