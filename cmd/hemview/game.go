package main

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/hemesh"
)

// screenVertex is a mesh vertex after projection.
type screenVertex struct {
	x, y    float32
	depth   float64
	visible bool
}

// viewer draws a half-edge mesh. It only reads the mesh.
type viewer struct {
	mesh  *hemesh.Mesh[float64]
	stats hemesh.Stats
	cfg   Config
	cam   *orbitCamera
	fill  bool

	dragging     bool
	lastX, lastY int

	projected []screenVertex
	order     []hemesh.FaceIndex
	faces     triangleBatch
}

func newViewer(m *hemesh.Mesh[float64], cfg Config) *viewer {
	lo, hi := m.Bounds()
	v := &viewer{
		mesh:      m,
		stats:     m.Stats(),
		cfg:       cfg,
		cam:       newOrbitCamera(lo.Vec3(), hi.Vec3(), cfg),
		fill:      cfg.Fill,
		projected: make([]screenVertex, m.NumVertices()),
		order:     make([]hemesh.FaceIndex, m.NumFaces()),
	}
	for f := range v.order {
		v.order[f] = hemesh.FaceIndex(f)
	}
	return v
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.fill = !v.fill
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.dragging = true
		v.lastX, v.lastY = ebiten.CursorPosition()
	}
	if v.dragging {
		x, y := ebiten.CursorPosition()
		v.cam.rotate(float64(v.lastX-x)/200.0, float64(y-v.lastY)/200.0)
		v.lastX, v.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		v.cam.zoom(wy)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.cfg.Background.RGBA())
	v.project()
	if v.fill {
		v.drawFaces(screen)
	}
	v.drawEdges(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nfaces %d  boundary edges %d",
		ebiten.ActualFPS(), v.stats.Faces, v.stats.Boundary))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}

func (v *viewer) project() {
	vp := v.cam.viewport(v.cfg.Width, v.cfg.Height)
	for i := range v.projected {
		p := &v.projected[i]
		p.x, p.y, p.depth, p.visible = vp.project(v.mesh.Position(hemesh.VertexIndex(i)).Vec3())
	}
}

func (v *viewer) faceVisible(f hemesh.FaceIndex) bool {
	for _, c := range v.mesh.FaceVertices(f) {
		if !v.projected[c].visible {
			return false
		}
	}
	return true
}

func (v *viewer) faceDepth(f hemesh.FaceIndex) float64 {
	var depth float64
	for _, c := range v.mesh.FaceVertices(f) {
		depth += v.projected[c].depth
	}
	return depth
}

// drawFaces paints faces far to near so nearer faces cover the ones behind.
func (v *viewer) drawFaces(screen *ebiten.Image) {
	sort.Slice(v.order, func(i, j int) bool {
		return v.faceDepth(v.order[i]) > v.faceDepth(v.order[j])
	})

	eye := v.cam.eye()
	base := v.cfg.FaceColor.RGBA()
	var xp, yp [3]float32
	v.faces.reset()
	for _, f := range v.order {
		if !v.faceVisible(f) {
			continue
		}
		corners := v.mesh.FaceVertices(f)
		for i, c := range corners {
			xp[i], yp[i] = v.projected[c].x, v.projected[c].y
		}

		normal := v.mesh.FaceNormal(f).Vec3()
		toEye := eye.Sub(v.mesh.Position(corners[0]).Vec3())
		if toEye.Len() > 0 {
			toEye = toEye.Normalize()
		}
		// Faces are drawn from both sides.
		if normal.Dot(toEye) < 0 {
			normal = normal.Mul(-1)
		}
		if v.faces.full() {
			v.faces.flush(screen)
		}
		v.faces.add(xp, yp, shade(base, normal, toEye))
	}
	v.faces.flush(screen)
}

// drawEdges strokes every edge once. An edge with two half-edges is drawn
// from the lower numbered one. Boundary half-edges get their own colour.
func (v *viewer) drawEdges(screen *ebiten.Image) {
	edgeColor := v.cfg.EdgeColor.RGBA()
	boundaryColor := v.cfg.BoundaryColor.RGBA()

	for f := range v.mesh.NumFaces() {
		v.mesh.VisitFace(hemesh.FaceIndex(f), func(e hemesh.EdgeIndex) {
			he := v.mesh.HalfEdge(e)
			clr := boundaryColor
			if pair, ok := he.Pair(); ok {
				if pair < e {
					return
				}
				clr = edgeColor
			}

			a, b := v.projected[he.Origin()], v.projected[v.mesh.Destination(e)]
			if !a.visible || !b.visible {
				return
			}
			drawLine(screen, a.x, a.y, b.x, b.y, v.cfg.EdgeWidth, clr)
		})
	}
}
