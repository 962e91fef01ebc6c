// Package render draws the level as coloured wireframe boxes with OpenGL.
// It must be used from the thread that owns the GL context.
package render

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"dashrun/geom"
	"dashrun/level"
)

const (
	fovY    = 70.0
	zNear   = 0.1
	zFar    = 1000.0
	hairLen = 0.03
)

type Renderer struct {
	program      uint32
	mvpUniform   int32
	colorUniform int32

	cubeVAO, cubeVBO, cubeEBO uint32
	hairVAO, hairVBO          uint32

	projection mgl32.Mat4
	aspect     float32
}

// New compiles the shaders and uploads the shared cube mesh. gl.Init must
// have been called on the current context.
func New(width, height int) (*Renderer, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		program:      program,
		mvpUniform:   gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		colorUniform: gl.GetUniformLocation(program, gl.Str("colour\x00")),
	}
	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))

	cubeVertices := geom.CubeVertices()
	cubeIndices := geom.CubeEdges[:]

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.cubeEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.cubeEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	hair := []float32{
		-hairLen, 0, 0, hairLen, 0, 0,
		0, -hairLen, 0, 0, hairLen, 0,
	}
	gl.GenVertexArrays(1, &r.hairVAO)
	gl.BindVertexArray(r.hairVAO)

	gl.GenBuffers(1, &r.hairVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.hairVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(hair)*4, gl.Ptr(hair), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	r.Resize(width, height)
	return r, nil
}

// Resize updates the viewport and projection for a new framebuffer size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.aspect = float32(width) / float32(height)
	r.projection = mgl32.Perspective(mgl32.DegToRad(fovY), r.aspect, zNear, zFar)
}

// Draw clears the frame and draws every occupied object seen from eye.
func (r *Renderer) Draw(eye, target mgl64.Vec3, objects *level.Arena) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	camera := mgl32.LookAtV(vec32(eye), vec32(target), mgl32.Vec3{0, 1, 0})
	viewProj := r.projection.Mul4(camera)

	gl.BindVertexArray(r.cubeVAO)
	objects.Each(func(_ int, o *level.Object) bool {
		model := mgl32.Translate3D(float32(o.Position[0]), float32(o.Position[1]), float32(o.Position[2])).
			Mul4(mgl32.Scale3D(float32(o.Size[0]), float32(o.Size[1]), float32(o.Size[2])))
		mvp := viewProj.Mul4(model)
		gl.UniformMatrix4fv(r.mvpUniform, 1, false, &mvp[0])
		r.setColor(o.Color)
		gl.DrawElements(gl.LINES, int32(len(geom.CubeEdges)), gl.UNSIGNED_INT, gl.PtrOffset(0))
		return true
	})

	r.drawCrosshair()
	gl.BindVertexArray(0)
}

func (r *Renderer) drawCrosshair() {
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	mvp := mgl32.Scale3D(1/r.aspect, 1, 1)
	gl.UniformMatrix4fv(r.mvpUniform, 1, false, &mvp[0])
	r.setColor(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	gl.BindVertexArray(r.hairVAO)
	gl.DrawArrays(gl.LINES, 0, 4)
}

func (r *Renderer) setColor(c color.RGBA) {
	gl.Uniform4f(r.colorUniform,
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

// Delete frees GPU objects. The renderer must not be used afterwards.
func (r *Renderer) Delete() {
	gl.DeleteBuffers(1, &r.cubeVBO)
	gl.DeleteBuffers(1, &r.cubeEBO)
	gl.DeleteBuffers(1, &r.hairVBO)
	gl.DeleteVertexArrays(1, &r.cubeVAO)
	gl.DeleteVertexArrays(1, &r.hairVAO)
	gl.DeleteProgram(r.program)
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
