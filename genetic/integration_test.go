package genetic_test

import (
	"testing"

	"github.com/katalvlaran/gatsp/genetic"
	"github.com/stretchr/testify/suite"
)

// GenerationSuite drives the three operations the way a driver would:
// rank everything, breed the top half, mutate, replace the bottom half.
type GenerationSuite struct {
	suite.Suite

	eng *genetic.Engine
	pop []genetic.Route
}

func (s *GenerationSuite) SetupTest() {
	s.eng = newEngine(s.T(), genetic.WithSeed(2024))
	s.pop = randomPopulation(smallPop, seedDet)
}

// step runs one generation and returns the best fitness after ranking.
func (s *GenerationSuite) step() float64 {
	s.Require().NoError(s.eng.Evaluate(s.pop))
	s.Require().True(genetic.IsRanked(s.pop))

	kids, err := s.eng.Crossover(s.pop[:smallTop])
	s.Require().NoError(err)
	s.Require().NoError(s.eng.Mutate(kids))
	copy(s.pop[smallTop:], kids)

	return s.pop[0].Fitness
}

// TestElitistLoopNeverRegresses: parents survive in the top half, so the best
// fitness cannot get worse from one generation to the next.
func (s *GenerationSuite) TestElitistLoopNeverRegresses() {
	prev := s.step()
	first := prev
	for gen := 1; gen < 15; gen++ {
		best := s.step()
		s.Require().LessOrEqual(best, prev, "generation %d", gen)
		prev = best
	}
	s.Require().Less(prev, first, "fifteen generations should improve on random routes")
	requirePermutation(s.T(), s.pop)
}

// TestGenerationKeepsPermutations checks the invariant across the whole
// buffer after several full rounds.
func (s *GenerationSuite) TestGenerationKeepsPermutations() {
	for gen := 0; gen < 5; gen++ {
		s.step()
		requirePermutation(s.T(), s.pop)
	}
}

func TestGenerationSuite(t *testing.T) {
	suite.Run(t, new(GenerationSuite))
}
