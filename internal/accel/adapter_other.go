//go:build !((windows || linux || darwin) && (amd64 || arm64))

package accel

// webgpuAdapters reports no adapter where the wgpu bindings have no loader.
func webgpuAdapters() int {
	return 0
}
