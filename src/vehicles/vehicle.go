// Package vehicles holds the vehicle hierarchy with capabilities split by what each
// variant can actually do. Vehicle is what every variant honors; MotorVehicle adds
// StartMotor for the variants that have a motor. A variant without a motor never
// carries StartMotor, so calling it is a compile error rather than a runtime failure.
package vehicles

import (
	"os"

	"lspvehicles/src/logging"

	"go.uber.org/zap"
)

// Vehicle is the capability set shared by every variant.
type Vehicle interface {
	Name() string
	Accelerate()
	Stop()
}

// Base implements Vehicle. The name is fixed at construction.
type Base struct {
	name     string
	narrator *zap.SugaredLogger
}

// NewVehicle creates a vehicle with the given identity. A nil narrator prints to stdout.
func NewVehicle(name string, narrator *zap.SugaredLogger) *Base {
	if narrator == nil {
		narrator = logging.NewNarrator(os.Stdout)
	}
	return &Base{
		name:     name,
		narrator: narrator,
	}
}

func (v *Base) Name() string {
	return v.name
}

func (v *Base) Accelerate() {
	v.narrator.Infof("accelerate %s", v.name)
}

func (v *Base) Stop() {
	v.narrator.Infof("stop %s", v.name)
}
