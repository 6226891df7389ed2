package main

// Camera represents the viewer the driver re-projects every frame. Unlike the rest of the
// engine's cameras it never projects points on the CPU: the shader ray-marches, so all this
// needs to supply are the uniforms listed in the buffer contract (view, projection, position,
// zoom).
type Camera struct {
	Transform *Transform // position + orientation
	FOVY      float64    // vertical field of view, degrees
	Near      float64
	Far       float64
	Zoom      float64 // forwarded to the camera-zoom uniform
}

// NewCamera creates a camera at the default (non-debug) placement used by the original program:
// just above the scene floor, looking down -Z.
func NewCamera() *Camera {
	return &Camera{
		Transform: NewTransformAt(0, 2.5, 0),
		FOVY:      60.0,
		Near:      0.1,
		Far:       1000.0,
		Zoom:      1.0,
	}
}

// NewDebugCamera places the camera the way DEBUG mode does in the original program: pulled back
// to frame the trivial three-sphere scene.
func NewDebugCamera() *Camera {
	cam := NewCamera()
	cam.SetPosition(30, 20, -50)
	return cam
}

func (cam *Camera) GetPosition() Point {
	return cam.Transform.GetWorldPosition()
}

func (cam *Camera) SetPosition(x, y, z float64) {
	cam.Transform.SetPosition(x, y, z)
}

// MoveForward moves the camera along its own forward vector.
func (cam *Camera) MoveForward(distance float64) {
	f := cam.Transform.GetForwardVector()
	cam.Transform.Translate(f.X*distance, f.Y*distance, f.Z*distance)
}

// MoveRight moves the camera along its own right vector.
func (cam *Camera) MoveRight(distance float64) {
	r := cam.Transform.GetRightVector()
	cam.Transform.Translate(r.X*distance, r.Y*distance, r.Z*distance)
}

// MoveUp moves the camera along world-space up, independent of pitch.
func (cam *Camera) MoveUp(distance float64) {
	cam.Transform.Translate(0, distance, 0)
}

// RotateYaw turns the camera left/right around the world Y axis.
func (cam *Camera) RotateYaw(angle float64) {
	cam.Transform.Rotate(0, angle, 0)
}

// RotatePitch tilts the camera up/down around its local X axis.
func (cam *Camera) RotatePitch(angle float64) {
	cam.Transform.Rotate(angle, 0, 0)
}

// LookAt reorients the camera toward a target position.
func (cam *Camera) LookAt(target Point) {
	cam.Transform.LookAt(target)
}
