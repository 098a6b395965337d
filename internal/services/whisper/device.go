package whisper

import "strings"

// ResolveDevice picks the compute device for a run. An explicit override wins
// verbatim; otherwise the accelerator probe decides between CUDA and CPU.
func ResolveDevice(override string, acceleratorAvailable func() bool) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	if acceleratorAvailable != nil && acceleratorAvailable() {
		return CUDADevice
	}
	return CPUDevice
}
