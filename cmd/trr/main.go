package main

import (
	"fmt"

	"github.com/temirov/trr/internal/cli"
	"github.com/temirov/trr/internal/utils"
)

// main is the entry point for the trr command.
func main() {
	logLevel := utils.NewDefaultLogLevel()
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(logLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance, logLevel); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
