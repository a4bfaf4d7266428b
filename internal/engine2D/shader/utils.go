package shader

const vertexSource = `in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
uniform mat4 mvp;
out vec2 fragTexCoord;
out vec4 fragColor;

void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// Radially modulated RGB split: red and blue are sampled on either side of green,
// with the split growing past MODULATION_OFFSET from the center.
const chromaticAberrationSource = `in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec2 uOffset;
uniform float uModulationOffset;
out vec4 finalColor;

void main() {
    vec2 uv = fragTexCoord;
    float ra = distance(uv, vec2(0.5)) * 2.0;
    vec2 ofs = uOffset * max(ra - uModulationOffset, 0.0);

    vec4 cr = texture(texture0, uv + ofs);
    vec4 cg = texture(texture0, uv);
    vec4 cb = texture(texture0, uv - ofs);

    finalColor = vec4(cr.r, cg.g, cb.b, cg.a) * colDiffuse * fragColor;
}
`

var builtinSources = map[string]string{
	ChromaticAberration: chromaticAberrationSource,
}
