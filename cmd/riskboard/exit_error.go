package main

import "fmt"

// exitError carries an explicit process exit code through cobra's error
// return path. silent suppresses the fatal log for failures the command
// already reported itself (e.g. a canceled sync).
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e == nil {
		return ""
	}
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}
