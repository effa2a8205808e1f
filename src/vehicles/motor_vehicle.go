package vehicles

import "go.uber.org/zap"

// MotorVehicle extends Vehicle with StartMotor. Only variants that have a motor implement it.
type MotorVehicle interface {
	Vehicle
	StartMotor()
}

// Motorized implements MotorVehicle on top of Base.
type Motorized struct {
	Base
}

func NewMotorVehicle(name string, narrator *zap.SugaredLogger) *Motorized {
	return &Motorized{Base: *NewVehicle(name, narrator)}
}

func (m *Motorized) StartMotor() {
	m.narrator.Infof("starting motor %s", m.name)
}
