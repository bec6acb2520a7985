package opengl

// Every program reads the same vertex layout and shares the lighting
// uniforms; they differ only in where and how the light is evaluated.

const vertexInputs = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform mat3 normalMatrix;
`

const lightUniforms = `
uniform vec3  baseColor;
uniform vec3  ambient;
uniform vec3  lightDir;   // toward the light, world space
uniform vec3  lightColor; // zero when the light is hidden
uniform vec3  specular;
uniform float shininess;
uniform int   bands;
uniform vec3  eyePos;
`

// Gouraud: lighting evaluated per vertex and interpolated.
const gouraudVert = vertexInputs + lightUniforms + `
out vec3 vColor;

void main() {
    vec4 world  = model * vec4(inPosition, 1.0);
    vec3 n      = normalize(normalMatrix * inNormal);
    float diff  = max(dot(n, normalize(lightDir)), 0.0);
    vColor      = baseColor * (ambient + lightColor * diff);
    gl_Position = projection * view * world;
}
` + "\x00"

const gouraudFrag = `
#version 410 core
in vec3 vColor;
out vec4 outColor;

void main() {
    outColor = vec4(vColor, 1.0);
}
` + "\x00"

// Shared by Phong and Toon, which light per fragment.
const fragmentVert = vertexInputs + `
out vec3 vNormal;
out vec3 vWorld;

void main() {
    vec4 world  = model * vec4(inPosition, 1.0);
    vNormal     = normalMatrix * inNormal;
    vWorld      = world.xyz;
    gl_Position = projection * view * world;
}
` + "\x00"

const phongFrag = `
#version 410 core
in vec3 vNormal;
in vec3 vWorld;
out vec4 outColor;
` + lightUniforms + `
void main() {
    vec3 n    = normalize(vNormal);
    vec3 l    = normalize(lightDir);
    vec3 v    = normalize(eyePos - vWorld);
    vec3 h    = normalize(l + v);
    float diff = max(dot(n, l), 0.0);
    float spec = diff > 0.0 ? pow(max(dot(n, h), 0.0), shininess) : 0.0;
    vec3 lit  = baseColor * (ambient + lightColor * diff) + specular * lightColor * spec;
    outColor  = vec4(lit, 1.0);
}
` + "\x00"

const toonFrag = `
#version 410 core
in vec3 vNormal;
in vec3 vWorld;
out vec4 outColor;
` + lightUniforms + `
void main() {
    vec3 n     = normalize(vNormal);
    float diff = max(dot(n, normalize(lightDir)), 0.0);
    float steps = float(max(bands, 1));
    diff = floor(diff * steps) / steps;
    outColor = vec4(baseColor * (ambient + lightColor * diff), 1.0);
}
` + "\x00"
