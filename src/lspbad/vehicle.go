// Package lspbad is the hierarchy the vehicles package replaces. Its root Vehicle
// declares StartMotor, so Bicycle has to implement it and can only fail.
// Callers holding a Vehicle cannot tell which one they got until the call errors.
package lspbad

import (
	"fmt"
	"os"

	"lspvehicles/src/logging"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Vehicle interface {
	Name() string
	StartMotor() error
	Accelerate()
	Stop()
}

type base struct {
	name     string
	narrator *zap.SugaredLogger
}

func newBase(name string, narrator *zap.SugaredLogger) base {
	if narrator == nil {
		narrator = logging.NewNarrator(os.Stdout)
	}
	return base{name: name, narrator: narrator}
}

func (v *base) Name() string {
	return v.name
}

func (v *base) Accelerate() {
	v.narrator.Infof("accelerate %s", v.name)
}

func (v *base) Stop() {
	v.narrator.Infof("stop %s", v.name)
}

// Car has a motor and honors every operation of Vehicle.
type Car struct {
	base
}

func NewCar(name string, narrator *zap.SugaredLogger) *Car {
	return &Car{newBase(name, narrator)}
}

func (c *Car) StartMotor() error {
	c.narrator.Infof("starting motor %s", c.name)
	return nil
}

// Bicycle inherits StartMotor from the shared contract but has nothing to start.
type Bicycle struct {
	base
}

func NewBicycle(name string, narrator *zap.SugaredLogger) *Bicycle {
	return &Bicycle{newBase(name, narrator)}
}

func (b *Bicycle) StartMotor() error {
	return fmt.Errorf("starting motor %s: bicycle has no motor: %w", b.name, ErrUnsupportedOperation)
}

// StartAll starts every motor in the fleet and returns the combined failures.
func StartAll(fleet []Vehicle) error {
	var err error
	for _, v := range fleet {
		err = multierr.Append(err, v.StartMotor())
	}
	return err
}
