package shader

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Parameters are the uniform locations of a post-process pass. Missing uniforms are -1.
type Parameters struct {
	Offset           int32
	ModulationOffset int32
}

// ResolveShaderLocations queries a shader for all uniform locations needed for rendering.
func ResolveShaderLocations(shader rl.Shader) Parameters {
	return Parameters{
		Offset:           rl.GetShaderLocation(shader, "uOffset"),
		ModulationOffset: rl.GetShaderLocation(shader, "uModulationOffset"),
	}
}
