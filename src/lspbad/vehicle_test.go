package lspbad

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*Bicycle)(nil)
)

func TestBicycleStartMotorAlwaysFails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bike := NewBicycle("BMX Bike", zap.New(core).Sugar())

	for i := 0; i < 3; i++ {
		err := bike.StartMotor()
		if !errors.Is(err, ErrUnsupportedOperation) {
			t.Fatalf("attempt %d: expected ErrUnsupportedOperation, got %v", i, err)
		}
		if !strings.Contains(err.Error(), "BMX Bike") {
			t.Errorf("expected error to name the vehicle, got %q", err.Error())
		}
	}
	if logs.Len() != 0 {
		t.Errorf("expected no narration from a failed start, got %d lines", logs.Len())
	}
}

func TestCarStartMotor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	car := NewCar("Tesla", zap.New(core).Sugar())

	if err := car.StartMotor(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := logs.FilterMessage("starting motor Tesla").Len(); got != 1 {
		t.Errorf("expected 1 motor start line, got %d", got)
	}
}

func TestSharedOperationsStillWork(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	narrator := zap.New(core).Sugar()

	fleet := []Vehicle{NewCar("Suv Nissan", narrator), NewBicycle("BMX Bike", narrator)}
	for _, v := range fleet {
		v.Accelerate()
		v.Stop()
	}

	want := []string{"accelerate Suv Nissan", "stop Suv Nissan", "accelerate BMX Bike", "stop BMX Bike"}
	entries := logs.All()
	if len(entries) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(entries))
	}
	for i, entry := range entries {
		if entry.Message != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], entry.Message)
		}
	}
}

func TestStartAll(t *testing.T) {
	narrator := zap.NewNop().Sugar()

	tests := []struct {
		name       string
		fleet      []Vehicle
		wantErrors int
	}{
		{name: "empty", fleet: nil, wantErrors: 0},
		{name: "cars only", fleet: []Vehicle{NewCar("Suv Nissan", narrator), NewCar("Tesla", narrator)}, wantErrors: 0},
		{name: "one bicycle", fleet: []Vehicle{NewCar("Tesla", narrator), NewBicycle("BMX Bike", narrator)}, wantErrors: 1},
		{name: "two bicycles", fleet: []Vehicle{NewBicycle("BMX Bike", narrator), NewBicycle("Road Bike", narrator)}, wantErrors: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StartAll(tt.fleet)
			if got := len(multierr.Errors(err)); got != tt.wantErrors {
				t.Fatalf("expected %d errors, got %d (%v)", tt.wantErrors, got, err)
			}
			if tt.wantErrors > 0 && !errors.Is(err, ErrUnsupportedOperation) {
				t.Errorf("expected combined error to wrap ErrUnsupportedOperation, got %v", err)
			}
		})
	}
}
