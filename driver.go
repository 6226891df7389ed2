package main

import (
	"fmt"
	"math"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW/OpenGL require the calling goroutine to stay put.
	runtime.LockOSThread()
}

// bufferTexture is one GL_TEXTURE_BUFFER binding: a plain buffer object plus the texture handle
// that lets the fragment shader sample it with texelFetch.
type bufferTexture struct {
	buffer  uint32
	texture uint32
}

// Driver owns the scene and the linearized tree, bootstraps GLFW/OpenGL 4.1 core, uploads the
// seven GPU buffers once at startup, then re-binds camera uniforms and issues one full-screen
// draw per frame. No per-frame CPU-side recomputation of the tree; the scene is static.
type Driver struct {
	window *glfw.Window
	input  InputManager
	camera *Camera
	stats  *Profiler

	program  uint32
	quadVAO  uint32
	quadVBO  uint32
	bindings [7]bufferTexture
	uniforms map[string]int32

	spheres       []Sphere
	nodes         []LinearNode
	objectIndices []int
}

// NewDriver constructs a driver with the configured scene and default camera placement.
func NewDriver() *Driver {
	cam := NewCamera()
	if DEBUG {
		cam = NewDebugCamera()
	}
	return &Driver{
		camera:   cam,
		stats:    NewProfiler(COLLECT_STATS),
		uniforms: make(map[string]int32),
	}
}

// Initialize bootstraps the window and GL context, builds and linearizes the scene, and uploads
// every buffer. Returns ErrEmptyScene/ErrUploadFailed on failure; the caller is expected to log
// and exit, matching the original program's fatal-at-startup policy.
func (d *Driver) Initialize() error {
	d.stats.BeginInit()

	fmt.Println("[Driver] Initializing...")

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(SCR_WIDTH, SCR_HEIGHT, "Octree Path Tracer", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %v", err)
	}
	d.window = window
	d.window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("[Driver] OpenGL version: %s\n", version)

	d.input = NewGLFWInputManager(d.window)

	if err := d.setupScene(); err != nil {
		return err
	}

	if err := d.createShaderProgram(); err != nil {
		return err
	}

	d.createQuad()

	if err := d.uploadBuffers(); err != nil {
		return err
	}

	gl.Viewport(0, 0, SCR_WIDTH, SCR_HEIGHT)

	d.stats.EndInit()
	fmt.Println("[Driver] Initialization complete")
	return nil
}

// setupScene generates the sphere list, builds the octree and linearizes it. Build errors are
// fatal at startup; DegenerateBounds is just logged.
func (d *Driver) setupScene() error {
	d.spheres = NewScene()

	root, err := Build(d.spheres, EffectiveDepth(), EffectiveSpheresPerNode())
	if err != nil {
		if _, ok := err.(*DegenerateBoundsWarning); ok {
			fmt.Printf("[Octree] warning: %v\n", err)
		} else {
			return fmt.Errorf("scene build failed: %w", err)
		}
	}

	d.nodes, d.objectIndices = Linearize(root)
	fmt.Printf("[Octree] %d nodes, %d spheres, %d object-index entries\n", len(d.nodes), len(d.spheres), len(d.objectIndices))
	return nil
}

func (d *Driver) createShaderProgram() error {
	vertexShader, err := compileShader(quadVertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %v", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(octreeFragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %v", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return fmt.Errorf("failed to link program: %v", log)
	}

	d.program = program
	for _, name := range []string{
		"view", "projection", "cameraPos", "cameraZoom", "iResolution",
		"octreeNodeCount", "sphereCount", "numSamples", "maxDepth", "useOctree",
		"sphereGeometry", "sphereMaterialA", "sphereMaterialB",
		"nodeBoundsA", "nodeBoundsB", "nodeCounts", "objectIndices",
	} {
		d.uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}

	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}

// createQuad allocates the two-triangle NDC quad the fragment shader ray-marches over. No
// per-node geometry; the octree only ever travels through buffer textures.
func (d *Driver) createQuad() {
	vertices := []float32{
		-1, 1, 0, 1,
		-1, -1, 0, 0,
		1, -1, 1, 0,

		-1, 1, 0, 1,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &d.quadVAO)
	gl.BindVertexArray(d.quadVAO)

	gl.GenBuffers(1, &d.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// uploadBuffers packs the scene and tree into the seven fixed-width records and uploads each as
// a GL_TEXTURE_BUFFER, the OpenGL-4.1-compatible stand-in for the shader storage buffers the
// original binding contract assumes. Binding order is fixed: any allocation failure here is
// fatal (UploadFailed).
func (d *Driver) uploadBuffers() error {
	layout := PackGPULayout(d.spheres, d.nodes, d.objectIndices)

	vec4Buffers := [][]Vec4{
		layout.SphereGeometry,
		layout.SphereMaterialA,
		layout.SphereMaterialB,
		layout.NodeBoundsA,
		layout.NodeBoundsB,
	}
	for i, data := range vec4Buffers {
		bt, err := newVec4BufferTexture(data)
		if err != nil {
			return fmt.Errorf("%w: binding %d: %v", ErrUploadFailed, i, err)
		}
		d.bindings[i] = bt
	}

	intBuffers := [][]int32{layout.NodeCounts, layout.ObjectIndices}
	for i, data := range intBuffers {
		bt, err := newIntBufferTexture(data)
		if err != nil {
			return fmt.Errorf("%w: binding %d: %v", ErrUploadFailed, i+5, err)
		}
		d.bindings[i+5] = bt
	}

	return nil
}

func newVec4BufferTexture(data []Vec4) (bufferTexture, error) {
	if len(data) == 0 {
		data = []Vec4{{}}
	}
	var bt bufferTexture
	gl.GenBuffers(1, &bt.buffer)
	gl.BindBuffer(gl.TEXTURE_BUFFER, bt.buffer)
	gl.BufferData(gl.TEXTURE_BUFFER, len(data)*int(unsafe.Sizeof(Vec4{})), gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenTextures(1, &bt.texture)
	gl.BindTexture(gl.TEXTURE_BUFFER, bt.texture)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.RGBA32F, bt.buffer)

	if bt.buffer == 0 || bt.texture == 0 {
		return bt, fmt.Errorf("buffer texture allocation returned a zero handle")
	}
	return bt, nil
}

func newIntBufferTexture(data []int32) (bufferTexture, error) {
	if len(data) == 0 {
		data = []int32{0}
	}
	var bt bufferTexture
	gl.GenBuffers(1, &bt.buffer)
	gl.BindBuffer(gl.TEXTURE_BUFFER, bt.buffer)
	gl.BufferData(gl.TEXTURE_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenTextures(1, &bt.texture)
	gl.BindTexture(gl.TEXTURE_BUFFER, bt.texture)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.R32I, bt.buffer)

	if bt.buffer == 0 || bt.texture == 0 {
		return bt, fmt.Errorf("buffer texture allocation returned a zero handle")
	}
	return bt, nil
}

// Run is the main loop: poll input, move the camera, upload uniforms, draw one full-screen
// quad, repeat until the window closes.
func (d *Driver) Run() {
	for !d.input.ShouldClose() {
		d.stats.BeginFrame()

		glfw.PollEvents()
		d.applyInput()
		d.render()

		d.window.SwapBuffers()
		d.stats.EndFrame(len(d.nodes), len(d.spheres))
	}
}

const flySpeed = 0.1
const turnSpeed = 0.02

func (d *Driver) applyInput() {
	state := d.input.GetInputState()

	if state.Forward {
		d.camera.MoveForward(flySpeed)
	}
	if state.Backward {
		d.camera.MoveForward(-flySpeed)
	}
	if state.Right {
		d.camera.MoveRight(flySpeed)
	}
	if state.Left {
		d.camera.MoveRight(-flySpeed)
	}
	if state.Up {
		d.camera.MoveUp(flySpeed)
	}
	if state.Down {
		d.camera.MoveUp(-flySpeed)
	}
	if state.RotLeft {
		d.camera.RotateYaw(-turnSpeed)
	}
	if state.RotRight {
		d.camera.RotateYaw(turnSpeed)
	}
	if state.RotUp {
		d.camera.RotatePitch(-turnSpeed)
	}
	if state.RotDown {
		d.camera.RotatePitch(turnSpeed)
	}
}

func (d *Driver) render() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(d.program)

	view := buildViewMatrix(d.camera)
	d.uploadMatrix("view", view)
	d.uploadMatrix("projection", buildProjectionMatrix(d.camera))

	pos := d.camera.GetPosition()
	gl.Uniform3f(d.uniforms["cameraPos"], float32(pos.X), float32(pos.Y), float32(pos.Z))
	gl.Uniform1f(d.uniforms["cameraZoom"], float32(d.camera.Zoom))
	gl.Uniform3f(d.uniforms["iResolution"], SCR_WIDTH, SCR_HEIGHT, 0)
	gl.Uniform1i(d.uniforms["octreeNodeCount"], int32(len(d.nodes)))
	gl.Uniform1i(d.uniforms["sphereCount"], int32(len(d.spheres)))
	gl.Uniform1i(d.uniforms["numSamples"], NUM_SAMPLES)
	gl.Uniform1i(d.uniforms["maxDepth"], MAX_RAYS_DEPTH)
	if USE_OCTREE {
		gl.Uniform1i(d.uniforms["useOctree"], 1)
	} else {
		gl.Uniform1i(d.uniforms["useOctree"], 0)
	}

	samplerNames := []string{
		"sphereGeometry", "sphereMaterialA", "sphereMaterialB",
		"nodeBoundsA", "nodeBoundsB", "nodeCounts", "objectIndices",
	}
	for i, name := range samplerNames {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_BUFFER, d.bindings[i].texture)
		gl.Uniform1i(d.uniforms[name], int32(i))
	}

	gl.BindVertexArray(d.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func (d *Driver) uploadMatrix(name string, m Matrix4x4) {
	var flat [16]float32
	for i := 0; i < 16; i++ {
		flat[i] = float32(m.M[i])
	}
	gl.UniformMatrix4fv(d.uniforms[name], 1, true, &flat[0])
}

// buildViewMatrix composes a translate-then-rotate matrix from the camera's transform. There is
// no Transform.GetInverseMatrix in this engine, so the view matrix is built directly rather than
// inverting a world matrix: translate by -position, then undo the camera's own yaw/pitch.
func buildViewMatrix(cam *Camera) Matrix4x4 {
	pos := cam.GetPosition()
	translate := Matrix4x4{M: [16]float64{
		1, 0, 0, -pos.X,
		0, 1, 0, -pos.Y,
		0, 0, 1, -pos.Z,
		0, 0, 0, 1,
	}}

	rot := cam.Transform.Rotation
	rotate := ComposeMatrix(Point{}, QuaternionFromEuler(-rot.X, -rot.Y, -rot.Z), Point{X: 1, Y: 1, Z: 1})

	return rotate.Multiply(translate)
}

// buildProjectionMatrix builds a standard OpenGL perspective matrix from the camera's FOV and
// clip planes.
func buildProjectionMatrix(cam *Camera) Matrix4x4 {
	fovY := cam.FOVY * math.Pi / 180.0
	aspect := float64(SCR_WIDTH) / float64(SCR_HEIGHT)
	near, far := cam.Near, cam.Far

	f := 1.0 / math.Tan(fovY/2.0)

	return Matrix4x4{M: [16]float64{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), (2 * far * near) / (near - far),
		0, 0, -1, 0,
	}}
}

// Shutdown releases the window and GLFW, and flushes COLLECT_STATS to disk.
func (d *Driver) Shutdown() {
	if err := d.stats.Flush(OUTPUT_FILE); err != nil {
		fmt.Printf("[Driver] failed to flush stats: %v\n", err)
	}
	if d.window != nil {
		d.window.Destroy()
	}
	glfw.Terminate()
}
