package gpio_test

import (
	"testing"

	"udm/internal/controller/gpio"
)

func TestSimulatorDefaultsAndRetainsLevel(t *testing.T) {
	sim := gpio.NewSimulator()

	pin, err := sim.Open(17)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if pin.Mode() != gpio.DirectionOut {
		t.Fatalf("expected DirectionOut, got %v", pin.Mode())
	}
	if pin.Level() != gpio.LevelLow {
		t.Fatalf("expected LevelLow by default, got %v", pin.Level())
	}

	if err := pin.SetLevel(gpio.LevelHigh); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if pin.Level() != gpio.LevelHigh {
		t.Fatalf("expected LevelHigh after SetLevel, got %v", pin.Level())
	}

	reopened, err := sim.Open(17)
	if err != nil {
		t.Fatalf("re-Open: %v", err)
	}
	if reopened.Level() != gpio.LevelHigh {
		t.Fatalf("expected level to persist across opens, got %v", reopened.Level())
	}

	if err := pin.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestSimulatorPinsAreIndependent(t *testing.T) {
	sim := gpio.NewSimulator()

	pinA, _ := sim.Open(1)
	pinB, _ := sim.Open(2)

	if err := pinA.SetLevel(gpio.LevelHigh); err != nil {
		t.Fatalf("SetLevel pinA: %v", err)
	}
	if pinB.Level() != gpio.LevelLow {
		t.Fatalf("expected pinB untouched, got %v", pinB.Level())
	}
}
