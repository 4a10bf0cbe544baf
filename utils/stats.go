package utils

import (
	"fmt"
	"time"
)

// populationSmoothing is the weight of the newest sample in AveragePopulation
const populationSmoothing = 0.1

// Stats tracks throughput and population over a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one generation into the running figures. A zero duration
// leaves the rate untouched
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += (float64(population) - s.AveragePopulation) * populationSmoothing
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// Summary renders the end-of-run report
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d generations in %.1f seconds | %.1f gen/sec | avg population %.1f | peak %d",
		s.TotalGenerations, s.Runtime().Seconds(), s.GenerationsPerSecond, s.AveragePopulation, s.PeakPopulation)
}
