//go:build (windows || linux || darwin) && (amd64 || arm64)

package accel

import "github.com/go-webgpu/webgpu/wgpu"

// webgpuAdapters requests the default adapter through wgpu_native. A missing
// library surfaces as a CreateInstance error; a panic inside the bindings
// also counts as no adapter.
func webgpuAdapters() (n int) {
	defer func() {
		if r := recover(); r != nil {
			n = 0
		}
	}()

	if err := wgpu.Init(); err != nil {
		return 0
	}
	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return 0
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil || adapter == nil {
		return 0
	}
	adapter.Release()
	return 1
}
