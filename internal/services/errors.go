package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classifying pipeline failures. Every fatal condition a run
// can hit is tagged with exactly one of these so the CLI edge can map it to a
// diagnostic and exit code without inspecting component internals.
var (
	ErrInput         = errors.New("input error")
	ErrDependency    = errors.New("dependency missing")
	ErrExtraction    = errors.New("extraction error")
	ErrEngine        = errors.New("engine error")
	ErrWrite         = errors.New("write error")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for classification. The marker should be one of
// the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a run error to the process exit status. Dependency problems
// get a distinct code so wrappers can tell "install the tool" apart from
// "this file failed".
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInput), errors.Is(err, ErrConfiguration):
		return 2
	case errors.Is(err, ErrDependency):
		return 3
	default:
		return 1
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
