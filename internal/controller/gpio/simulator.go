package gpio

import "sync"

// Simulator is a software-only Facade used in tests and on hosts with no
// physical GPIO header. Pins start out DirectionOut, LevelLow and retain
// state across opens so a dispense-then-read sequence in tests observes
// its own writes.
type Simulator struct {
	mu    sync.Mutex
	level map[int]Level
}

// NewSimulator constructs an empty Simulator.
func NewSimulator() *Simulator {
	return &Simulator{level: make(map[int]Level)}
}

// Open returns a handle to pinNumber. Simulator never fails to open a pin.
func (s *Simulator) Open(pinNumber int) (Pin, error) {
	return &simulatedPin{sim: s, pinNumber: pinNumber}, nil
}

type simulatedPin struct {
	sim       *Simulator
	pinNumber int
}

func (p *simulatedPin) Mode() Direction { return DirectionOut }

func (p *simulatedPin) Level() Level {
	p.sim.mu.Lock()
	defer p.sim.mu.Unlock()
	return p.sim.level[p.pinNumber]
}

func (p *simulatedPin) SetLevel(l Level) error {
	p.sim.mu.Lock()
	defer p.sim.mu.Unlock()
	p.sim.level[p.pinNumber] = l
	return nil
}

func (p *simulatedPin) Close() error { return nil }
