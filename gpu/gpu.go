// Package gpu compiles the embedded WGSL shading stages for hosts that
// run them on a device. It stops at the shader module: pipeline,
// descriptor, and device lifecycle management belong to the host.
package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	goose "github.com/jeff-pow/silly-goose"
)

// CompileShader compiles WGSL source to SPIR-V words.
func CompileShader(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// CompileStages compiles the package's embedded shading stages.
// The returned code contains both entry points
// (goose.VertexEntryPoint, goose.FragmentEntryPoint).
func CompileStages() ([]uint32, error) {
	return CompileShader(goose.ShaderSource())
}

// CreateShaderModule creates a HAL shader module from SPIR-V code on
// the caller's device. The caller owns the module and destroys it via
// the device when done.
func CreateShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}
