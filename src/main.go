package main

import (
	"log"
	"os"

	"lspvehicles/src/directors"
	"lspvehicles/src/logging"
	"lspvehicles/src/settings"
)

func main() {
	args := settings.GetSettings()

	logger, err := logging.NewDiagnostics(args)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	director := directors.NewDemoDirector(logging.NewNarrator(os.Stdout), logger, args)

	logger.Debug("driving vehicles with split capabilities")
	director.RunComplying()

	logger.Debug("driving vehicles that share one root contract")
	if err := director.RunNonComplying(); err != nil {
		logger.Warnw("substitution broken by the shared StartMotor contract", "error", err)
	}
}
