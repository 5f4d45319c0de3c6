package controls

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Segment is a line segment in gizmo-local space.
type Segment [2]mgl64.Vec3

// GizmoSpec describes one handle of a ControlsHelper. The Position, Rotation
// and Scale transform is baked into the segments when the helper is built.
type GizmoSpec struct {
	// Name is the axis label, e.g. "X", "XY" or "E". Visibility rules look
	// for the letters X, Y, Z and E in it.
	Name string
	// Tag marks special handles; "picker" handles are never recolored.
	Tag string
	// Mode groups handles, e.g. "translate" or "rotate".
	Mode  string
	Color Color

	Segments []Segment

	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// GizmoHandle is a built handle of a ControlsHelper.
type GizmoHandle struct {
	Name string
	Tag  string
	Mode string

	// Segments are in handle space with the GizmoSpec transform applied.
	Segments []Segment

	// Visible, Color, Rotation and Scale are recomputed by Update.
	Visible  bool
	Color    Color
	Rotation mgl64.Quat
	Scale    float64

	baseColor Color
}

// ControlsHelper is an on-screen gizmo that keeps a constant apparent size
// regardless of camera distance and highlights the active axis.
type ControlsHelper struct {
	// Camera the helper is viewed through.
	Camera *Camera

	Position mgl64.Vec3
	Rotation mgl64.Quat

	Enabled  bool
	Axis     string
	Mode     string
	Size     float64
	Dragging bool
	ShowX    bool
	ShowY    bool
	ShowZ    bool

	// StrokeWidth is the line width in pixels used by Draw.
	StrokeWidth float32

	// Eye is the unit direction from the helper to the camera, updated by
	// Update.
	Eye mgl64.Vec3
	// SizeAttenuation is the world size of one screen-height unit at the
	// helper's depth, updated by Update.
	SizeAttenuation float64

	Handles []*GizmoHandle
}

// NewControlsHelper builds a helper viewed through camera from specs.
func NewControlsHelper(camera *Camera, specs []GizmoSpec) *ControlsHelper {
	h := &ControlsHelper{
		Camera:          camera,
		Rotation:        mgl64.QuatIdent(),
		Enabled:         true,
		Size:            1,
		ShowX:           true,
		ShowY:           true,
		ShowZ:           true,
		StrokeWidth:     2,
		SizeAttenuation: 1,
	}
	for _, spec := range specs {
		h.Handles = append(h.Handles, newGizmoHandle(spec))
	}
	return h
}

func newGizmoHandle(spec GizmoSpec) *GizmoHandle {
	rot := spec.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	scale := spec.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	bake := func(p mgl64.Vec3) mgl64.Vec3 {
		p = mgl64.Vec3{p[0] * scale[0], p[1] * scale[1], p[2] * scale[2]}
		return rot.Rotate(p).Add(spec.Position)
	}
	segs := make([]Segment, len(spec.Segments))
	for i, s := range spec.Segments {
		segs[i] = Segment{bake(s[0]), bake(s[1])}
	}
	return &GizmoHandle{
		Name:      spec.Name,
		Tag:       spec.Tag,
		Mode:      spec.Mode,
		Segments:  segs,
		Visible:   true,
		Color:     spec.Color,
		Rotation:  mgl64.QuatIdent(),
		Scale:     1,
		baseColor: spec.Color,
	}
}

// AxisGizmo returns the specs of a three-axis gizmo: red X, green Y and blue
// Z lines of unit length.
func AxisGizmo() []GizmoSpec {
	return []GizmoSpec{
		{Name: "X", Color: Color{1, 0, 0, 1}, Segments: []Segment{{{0, 0, 0}, {1, 0, 0}}}},
		{Name: "Y", Color: Color{0, 1, 0, 1}, Segments: []Segment{{{0, 0, 0}, {0, 1, 0}}}},
		{Name: "Z", Color: Color{0, 0, 1, 1}, Segments: []Segment{{{0, 0, 0}, {0, 0, 1}}}},
	}
}

// Update recomputes the eye direction, size attenuation, and the
// visibility, color and transform of every handle.
func (h *ControlsHelper) Update() {
	cam := h.Camera
	if cam == nil {
		return
	}
	toCamera := cam.Position.Sub(h.Position)
	h.Eye = safeNormalize(toCamera)

	zoom := cam.Zoom
	if zoom == 0 {
		zoom = 1
	}
	h.SizeAttenuation = 1
	switch cam.Projection {
	case ProjectionOrthographic:
		h.SizeAttenuation = (cam.Top - cam.Bottom) / zoom
	case ProjectionPerspective:
		h.SizeAttenuation = toCamera.Len() * math.Min(1.9*math.Tan(math.Pi*cam.Fov/360)/zoom, 7)
	}

	for _, handle := range h.Handles {
		h.updateHandleVisibility(handle)
		h.updateHandleTransform(handle)
	}
}

func (h *ControlsHelper) updateHandleTransform(handle *GizmoHandle) {
	handle.Rotation = h.Rotation.Inverse()
	handle.Scale = h.SizeAttenuation * h.Size / 7
}

func (h *ControlsHelper) updateHandleVisibility(handle *GizmoHandle) {
	name := handle.Name
	handle.Visible = true
	if strings.Contains(name, "X") && !h.ShowX {
		handle.Visible = false
	}
	if strings.Contains(name, "Y") && !h.ShowY {
		handle.Visible = false
	}
	if strings.Contains(name, "Z") && !h.ShowZ {
		handle.Visible = false
	}
	if strings.Contains(name, "E") && (!h.ShowX || !h.ShowY || !h.ShowZ) {
		handle.Visible = false
	}

	if handle.Tag == "picker" {
		return
	}
	base := handle.baseColor
	handle.Color = base

	dim := func() {
		c := base.Lerp(ColorWhite, 0.5)
		c.A = base.A * 0.125
		handle.Color = c
	}
	highlight := func() {
		c := base.Lerp(ColorWhite, 0.5)
		c.A = 1
		handle.Color = c
	}

	switch {
	case !h.Enabled || (h.Mode != "" && handle.Mode != h.Mode):
		dim()
	case h.Axis != "":
		if name == h.Axis || (len(name) == 1 && strings.Contains(h.Axis, name)) {
			highlight()
		} else {
			dim()
		}
	}
}

// worldPoint maps a handle-space point to world space.
func (h *ControlsHelper) worldPoint(handle *GizmoHandle, p mgl64.Vec3) mgl64.Vec3 {
	return h.Position.Add(h.Rotation.Rotate(handle.Rotation.Rotate(p.Mul(handle.Scale))))
}

// ScreenSegments returns the visible segments of handle projected to screen
// pixels for a target of the given size. Segments with an end behind the
// camera are skipped.
func (h *ControlsHelper) ScreenSegments(handle *GizmoHandle, width, height float64) [][2]mgl64.Vec2 {
	if !handle.Visible || h.Camera == nil {
		return nil
	}
	var out [][2]mgl64.Vec2
	for _, s := range handle.Segments {
		a, okA := h.toScreen(h.worldPoint(handle, s[0]), width, height)
		b, okB := h.toScreen(h.worldPoint(handle, s[1]), width, height)
		if okA && okB {
			out = append(out, [2]mgl64.Vec2{a, b})
		}
	}
	return out
}

func (h *ControlsHelper) toScreen(p mgl64.Vec3, width, height float64) (mgl64.Vec2, bool) {
	ndc := h.Camera.Project(p)
	if ndc[2] < -1 || ndc[2] > 1 {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{(ndc[0] + 1) / 2 * width, (1 - ndc[1]) / 2 * height}, true
}

// Draw strokes every visible handle onto screen.
func (h *ControlsHelper) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, ht := float64(b.Dx()), float64(b.Dy())
	for _, handle := range h.Handles {
		clr := handle.Color.toRGBA()
		for _, seg := range h.ScreenSegments(handle, w, ht) {
			vector.StrokeLine(screen,
				float32(seg[0][0]), float32(seg[0][1]),
				float32(seg[1][0]), float32(seg[1][1]),
				h.StrokeWidth, clr, true)
		}
	}
}
