package deps

import "os/exec"

// acceleratorProbeBinary is the NVIDIA management tool whose presence on PATH
// signals a usable CUDA device. Matching whisper's own behaviour, presence of
// the driver tooling is treated as presence of the accelerator.
const acceleratorProbeBinary = "nvidia-smi"

// AcceleratorAvailable reports whether a CUDA-capable accelerator appears to
// be present on this host.
func AcceleratorAvailable() bool {
	_, err := exec.LookPath(acceleratorProbeBinary)
	return err == nil
}
