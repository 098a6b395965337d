// Package preflight runs environment checks before transcription work:
// external tool availability, staging directory access, and accelerator
// presence. Both the status command and the pipeline's fail-fast dependency
// check consume these.
package preflight
