package directors

import (
	"lspvehicles/src/lspbad"
	"lspvehicles/src/settings"
	"lspvehicles/src/vehicles"

	"go.uber.org/zap"
)

// DemoDirector drives each vehicle variant through the operations its type exposes.
type DemoDirector struct {
	narrator *zap.SugaredLogger
	settings *settings.Arguments
	logger   *zap.SugaredLogger
}

// NewDemoDirector creates a new DemoDirector
func NewDemoDirector(narrator *zap.SugaredLogger, logger *zap.SugaredLogger,
	settings *settings.Arguments) *DemoDirector {
	return &DemoDirector{
		narrator: narrator,
		settings: settings,
		logger:   logger,
	}
}

// RunComplying drives the vehicles package. StartMotor is only reachable through MotorVehicle.
func (d *DemoDirector) RunComplying() {
	motorized := []vehicles.MotorVehicle{
		vehicles.NewCombustionVehicle("Suv Nissan", d.narrator),
		vehicles.NewElectricVehicle("Tesla", d.narrator),
	}
	for _, v := range motorized {
		d.driveMotorized(v)
	}

	d.drive(vehicles.NewBicycle("BMX Bike", d.narrator))
}

func (d *DemoDirector) driveMotorized(v vehicles.MotorVehicle) {
	d.trace("driving motor vehicle", v.Name())
	v.StartMotor()
	v.Accelerate()
	v.Stop()
}

func (d *DemoDirector) drive(v vehicles.Vehicle) {
	d.trace("driving vehicle", v.Name())
	v.Accelerate()
	v.Stop()
}

// RunNonComplying drives the lspbad fleet the same way and returns the StartMotor failures.
func (d *DemoDirector) RunNonComplying() error {
	fleet := []lspbad.Vehicle{
		lspbad.NewCar("Suv Nissan", d.narrator),
		lspbad.NewCar("Tesla", d.narrator),
		lspbad.NewBicycle("BMX Bike", d.narrator),
	}

	err := lspbad.StartAll(fleet)
	for _, v := range fleet {
		d.trace("driving vehicle", v.Name())
		v.Accelerate()
		v.Stop()
	}
	return err
}

func (d *DemoDirector) trace(msg string, name string) {
	if d.settings != nil && d.settings.Verbose {
		d.logger.Debugw(msg, "vehicle", name)
	}
}
