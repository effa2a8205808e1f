package vehicles

import "go.uber.org/zap"

var (
	_ MotorVehicle = (*Motorized)(nil)
	_ MotorVehicle = (*CombustionVehicle)(nil)
	_ MotorVehicle = (*ElectricVehicle)(nil)
	_ Vehicle      = (*Base)(nil)
	_ Vehicle      = (*Bicycle)(nil)
)

// CombustionVehicle is a motorized variant.
type CombustionVehicle struct {
	Motorized
}

func NewCombustionVehicle(name string, narrator *zap.SugaredLogger) *CombustionVehicle {
	return &CombustionVehicle{Motorized: *NewMotorVehicle(name, narrator)}
}

// ElectricVehicle is a motorized variant. It behaves exactly like CombustionVehicle.
type ElectricVehicle struct {
	Motorized
}

func NewElectricVehicle(name string, narrator *zap.SugaredLogger) *ElectricVehicle {
	return &ElectricVehicle{Motorized: *NewMotorVehicle(name, narrator)}
}

// Bicycle has no motor, so it only satisfies Vehicle.
type Bicycle struct {
	Base
}

func NewBicycle(name string, narrator *zap.SugaredLogger) *Bicycle {
	return &Bicycle{Base: *NewVehicle(name, narrator)}
}
