package dashboard

import "github.com/charmbracelet/harmonica"

// springField eases every chart column towards its target level.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int) springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.7)}
}

func (s *springField) resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
}

func (s *springField) step(targets []float64) []float64 {
	s.resize(len(targets))
	for i, target := range targets {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], target)
	}
	return s.pos
}
