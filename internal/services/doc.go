// Package services defines the shared error taxonomy for pipeline components
// and the exit-code mapping the CLI applies when a run aborts.
package services
