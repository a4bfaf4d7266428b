package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hero-particles/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverrideDir holds optional <name>.frag files replacing the builtin sources.
var OverrideDir = "assets/shaders"

// PreprocessShader prepends the GLSL version line and the given defines.
func PreprocessShader(source string, defines map[string]string, name string) string {
	var sb strings.Builder
	sb.WriteString("#version 330\n")
	for k, v := range defines {
		sb.WriteString(fmt.Sprintf("#define %s %s\n", k, v))
	}

	source = strings.Trim(source, "\ufeff")
	if strings.HasPrefix(strings.TrimSpace(source), "#version") {
		utils.Debug("Shader: %s carries its own #version line, dropping it", name)
		lines := strings.SplitN(strings.TrimSpace(source), "\n", 2)
		if len(lines) == 2 {
			source = lines[1]
		} else {
			source = ""
		}
	}
	sb.WriteString(source)
	return sb.String()
}

// LoadShader compiles the named fragment shader. A file in OverrideDir wins over the builtin
// source. Returns an empty shader if compilation fails.
func LoadShader(name string, defines map[string]string) rl.Shader {
	fSource, ok := builtinSources[name]
	path := filepath.Join(OverrideDir, name+".frag")
	if data, err := os.ReadFile(path); err == nil {
		utils.Info("Shader: %s - using override %s", name, path)
		fSource = string(data)
		ok = true
	}
	if !ok {
		utils.Warn("Shader: %s - no source found", name)
		return rl.Shader{}
	}

	vSource := PreprocessShader(vertexSource, nil, name)
	fSource = PreprocessShader(fSource, defines, name)

	var shader rl.Shader
	func() {
		defer func() {
			if r := recover(); r != nil {
				utils.Error("Shader: %s - Compilation panic (skipping): %v", name, r)
				shader = rl.Shader{}
			}
		}()
		shader = rl.LoadShaderFromMemory(vSource, fSource)
	}()

	if shader.ID == 0 {
		utils.Warn("Shader: %s - Failed to compile from memory (returning empty shader)", name)
	} else {
		utils.Info("Shader: %s - Loaded successfully (ID: %d)", name, shader.ID)
	}
	return shader
}
