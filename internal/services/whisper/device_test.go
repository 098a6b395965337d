package whisper

import "testing"

func TestResolveDevice(t *testing.T) {
	available := func() bool { return true }
	unavailable := func() bool { return false }

	cases := []struct {
		name     string
		override string
		probe    func() bool
		want     string
	}{
		{"override wins over accelerator", "cpu", available, "cpu"},
		{"override passes through verbatim", "mps", unavailable, "mps"},
		{"override trimmed", "  cuda  ", unavailable, "cuda"},
		{"probe positive", "", available, CUDADevice},
		{"probe negative", "", unavailable, CPUDevice},
		{"nil probe defaults to cpu", "", nil, CPUDevice},
	}
	for _, tc := range cases {
		if got := ResolveDevice(tc.override, tc.probe); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
