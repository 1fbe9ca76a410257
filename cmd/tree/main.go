package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/tree/internal/cli"
	"github.com/temirov/tree/internal/utils"
)

// main is the entry point for the tree command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(false)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		var usageError *cli.UsageError
		if errors.As(applicationExecutionError, &usageError) {
			_ = loggerInstance.Sync()
			os.Exit(cli.UsageExitCode)
		}
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
