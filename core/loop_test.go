package core

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLoop(t *testing.T) (*Loop, *testRig, *fakeClock, *scriptReader) {
	t.Helper()
	rig := newTestRig(t)
	clock := &fakeClock{}
	reader := &scriptReader{}
	loop := NewLoop(rig.reg, rig.ses, rig.dis, clock, reader)
	return loop, rig, clock, reader
}

func TestLoopDispatchesOneLinePerStep(t *testing.T) {
	loop, rig, _, reader := newTestLoop(t)

	reader.push("s l L1 5")
	reader.push("s l L2 6")

	loop.Step()
	if rig.reg.Len() != 1 {
		t.Fatalf("first step dispatched %d lines, expected 1", rig.reg.Len())
	}
	loop.Step()
	if rig.reg.Len() != 2 {
		t.Fatalf("second step left registry at %d", rig.reg.Len())
	}

	// No pending line is not an error; the loop just moves on.
	loop.Step()
	if rig.reg.Len() != 2 {
		t.Error("idle step changed registry state")
	}
}

func TestLoopPollPrecedesTelemetryRead(t *testing.T) {
	loop, rig, clock, reader := newTestLoop(t)

	// A button on pin 2, at rest.
	rig.gpio.levels[2] = true
	reader.push("s b B1 2")
	clock.now = 1000
	loop.Step()
	if rig.reg.Len() != 1 {
		t.Fatal("button setup failed")
	}

	rig.ses.SetTelemetry(true)
	if err := rig.ses.SetPeriod(1); err != nil {
		t.Fatalf("SetPeriod failed: %v", err)
	}

	// Press the button; first poll restarts the debounce timer.
	rig.gpio.levels[2] = false
	clock.now = 2000
	rig.out.Reset()
	loop.Step()

	// Past the debounce window the same iteration commits the press
	// before telemetry reads it: the event is visible immediately.
	clock.now = 2060
	rig.out.Reset()
	loop.Step()
	if !strings.Contains(rig.out.String(), "B1 1") {
		t.Errorf("telemetry = %q, expected the press committed this iteration", rig.out.String())
	}

	// The latch cleared on read.
	clock.now = 2120
	rig.out.Reset()
	loop.Step()
	if !strings.Contains(rig.out.String(), "B1 0") {
		t.Errorf("telemetry = %q, expected cleared latch", rig.out.String())
	}
}

func TestLoopTelemetryCadence(t *testing.T) {
	loop, rig, clock, reader := newTestLoop(t)

	reader.push("s l L1 5")
	loop.Step()
	reader.push("t 1")
	loop.Step()
	reader.push("u 100")
	loop.Step()

	countData := func(s string) int { return strings.Count(s, "Data:") }

	var out bytes.Buffer
	rig.out.Reset()
	for now := int64(1000); now < 1100; now += 10 {
		clock.now = now
		loop.Step()
	}
	out.WriteString(rig.out.String())

	// Ten 10 ms steps cover one 100 ms period: exactly one emission.
	if n := countData(out.String()); n != 1 {
		t.Errorf("emitted %d telemetry lines over one period, expected 1", n)
	}
}
