package main

import (
	"sync"

	"github.com/spf13/cobra"
)

// annotationStructuredLog marks commands whose fatal-path errors go through
// the structured logger instead of plain stderr lines.
const annotationStructuredLog = "structured-log"

// commandExecutionContext records which command is running so the fatal
// error path can log with the right shape.
type commandExecutionContext struct {
	CommandPath       string
	UsesStructuredLog bool
}

var (
	executionContextMu sync.Mutex
	executionContext   commandExecutionContext
)

func currentCommandExecutionContext() commandExecutionContext {
	executionContextMu.Lock()
	defer executionContextMu.Unlock()
	return executionContext
}

func setCommandExecutionContext(ctx commandExecutionContext) {
	executionContextMu.Lock()
	defer executionContextMu.Unlock()
	executionContext = ctx
}

func resetCommandExecutionContext() {
	setCommandExecutionContext(commandExecutionContext{})
}

func commandUsesStructuredLogging(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationStructuredLog] == "true" {
			return true
		}
	}
	return false
}
