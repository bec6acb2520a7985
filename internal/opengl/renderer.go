package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"moonlit-scene/core"
	"moonlit-scene/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// program is a linked shader program and its uniform locations.
type program struct {
	id uint32

	model, view, projection, normalMatrix int32
	baseColor, ambient                    int32
	lightDir, lightColor                  int32
	specular, shininess, bands, eyePos    int32
}

func newShadingProgram(vertSrc, fragSrc string) (*program, error) {
	id, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	loc := func(name string) int32 {
		return gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}
	return &program{
		id:           id,
		model:        loc("model"),
		view:         loc("view"),
		projection:   loc("projection"),
		normalMatrix: loc("normalMatrix"),
		baseColor:    loc("baseColor"),
		ambient:      loc("ambient"),
		lightDir:     loc("lightDir"),
		lightColor:   loc("lightColor"),
		specular:     loc("specular"),
		shininess:    loc("shininess"),
		bands:        loc("bands"),
		eyePos:       loc("eyePos"),
	}, nil
}

// Lighting is the per-frame light state shared by every draw call.
type Lighting struct {
	Ambient    core.Color
	Direction  mgl32.Vec3 // toward the light
	LightColor core.Color // zero when the light is hidden
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	programs  map[scene.ShadingStyle]*program
	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// NewRenderer initialises OpenGL and compiles one program per shading style.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	sources := map[scene.ShadingStyle][2]string{
		scene.ShadingGouraud: {gouraudVert, gouraudFrag},
		scene.ShadingPhong:   {fragmentVert, phongFrag},
		scene.ShadingToon:    {fragmentVert, toonFrag},
	}
	r := &Renderer{
		programs:  make(map[scene.ShadingStyle]*program, len(sources)),
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}
	for style, src := range sources {
		p, err := newShadingProgram(src[0], src[1])
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s shader: %w", style, err)
		}
		r.programs[style] = p
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return r, nil
}

// Version reports the driver's OpenGL version string.
func (r *Renderer) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the framebuffer with the given colour.
func (r *Renderer) BeginFrame(background core.Color) {
	gl.ClearColor(background.R, background.G, background.B, background.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawNode draws one object with the program matching its material's style.
func (r *Renderer) DrawNode(node *scene.Node, camera *scene.Camera, lighting Lighting) error {
	mat := node.Material
	if mat == nil {
		return fmt.Errorf("node %q has no material", node.Name)
	}
	p, ok := r.programs[mat.Style]
	if !ok {
		return fmt.Errorf("node %q: no program for %s", node.Name, mat.Style)
	}
	gpu := r.ensureUploaded(node.Mesh)
	if gpu == nil {
		return nil
	}

	model := node.GetWorldMatrix()
	view := camera.GetViewMatrix()
	projection := camera.GetProjectionMatrix()
	normal := model.Mat3().Inv().Transpose()

	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.model, 1, false, &model[0])
	gl.UniformMatrix4fv(p.view, 1, false, &view[0])
	gl.UniformMatrix4fv(p.projection, 1, false, &projection[0])
	gl.UniformMatrix3fv(p.normalMatrix, 1, false, &normal[0])

	setColor(p.baseColor, mat.Color)
	setColor(p.ambient, lighting.Ambient)
	setColor(p.lightColor, lighting.LightColor)
	setColor(p.specular, mat.Specular)
	gl.Uniform3f(p.lightDir, lighting.Direction.X(), lighting.Direction.Y(), lighting.Direction.Z())
	gl.Uniform3f(p.eyePos, camera.Position.X(), camera.Position.Y(), camera.Position.Z())
	gl.Uniform1f(p.shininess, mat.Shininess)
	gl.Uniform1i(p.bands, int32(mat.ToonBands))

	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

func setColor(loc int32, c core.Color) {
	gl.Uniform3f(loc, c.R, c.G, c.B)
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.gpuMeshes, mesh)
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	for style, p := range r.programs {
		gl.DeleteProgram(p.id)
		delete(r.programs, style)
	}
}

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))

	// location 0: Position (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	// location 1: Normal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	return gpu
}

// ── shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
