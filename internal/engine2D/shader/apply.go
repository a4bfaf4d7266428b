package shader

import (
	"hero-particles/internal/engine2D/effect"
	"hero-particles/internal/vmath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const ChromaticAberration = "chromatic_aberration"

// State is the per-frame input of the post-process pass.
type State struct {
	Offset vmath.Vec2
}

// Pass is a compiled post-process shader with its resolved uniforms.
type Pass struct {
	Name       string
	Shader     rl.Shader
	Parameters Parameters
}

// NewChromaticAberrationPass compiles the RGB split pass. Ready reports false when the
// shader failed to compile; the renderer then blits the scene unmodified.
func NewChromaticAberrationPass() *Pass {
	s := LoadShader(ChromaticAberration, nil)
	return &Pass{
		Name:       ChromaticAberration,
		Shader:     s,
		Parameters: ResolveShaderLocations(s),
	}
}

func (p *Pass) Ready() bool {
	return p != nil && p.Shader.ID != 0
}

// ApplyPass uploads the per-frame uniforms. Call between BeginShaderMode and EndShaderMode.
func ApplyPass(pass *Pass, state State) {
	if !pass.Ready() {
		return
	}
	params := &pass.Parameters
	if params.Offset != -1 {
		rl.SetShaderValue(pass.Shader, params.Offset,
			[]float32{float32(state.Offset.X), float32(state.Offset.Y)}, rl.ShaderUniformVec2)
	}
	if params.ModulationOffset != -1 {
		rl.SetShaderValue(pass.Shader, params.ModulationOffset,
			[]float32{float32(effect.ModulationOffset)}, rl.ShaderUniformFloat)
	}
}

// Unload releases the GPU program.
func (p *Pass) Unload() {
	if p.Ready() {
		rl.UnloadShader(p.Shader)
		p.Shader = rl.Shader{}
	}
}
