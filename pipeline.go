package softrender

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minLight = 0.1
)

var lightDirection = Vec3{0, 1, -1}.Normalized()

// PipelineConfig fixes the viewport and lens at startup.
type PipelineConfig struct {
	Width  int
	Height int
	FOV    float32 // vertical, degrees
	Near   float32
	Far    float32
}

// FrameStats counts what happened to the source triangles of one frame.
type FrameStats struct {
	Source      int // triangles in the mesh
	Culled      int // back-facing or degenerate
	NearClipped int // survivors the near plane cut or removed
	Dropped     int // fragments with a vertex at or behind the eye
	Projected   int // fragments after projection, before screen clipping
	Fragments   int // triangles handed to the rasterizer
}

// Pipeline takes mesh triangles to screen-space fragments. It has no
// per-frame state; everything it holds is derived from PipelineConfig.
type Pipeline struct {
	width      int
	height     int
	projection Matrix4
	near       Plane
	screen     [4]Plane
}

func NewPipeline(cfg PipelineConfig) *Pipeline {
	w, h := float32(cfg.Width), float32(cfg.Height)
	fovScale := 1 / math32.Tan(mgl32.DegToRad(cfg.FOV*0.5))

	return &Pipeline{
		width:      cfg.Width,
		height:     cfg.Height,
		projection: ProjectionMatrix(h/w, fovScale, cfg.Near, cfg.Far),
		near:       NewPlane(Vec3{0, 0, cfg.Near}, Vec3{0, 0, 1}),
		screen: [4]Plane{
			NewPlane(Vec3{0, 0, 0}, Vec3{0, 1, 0}),
			NewPlane(Vec3{0, h - 1, 0}, Vec3{0, -1, 0}),
			NewPlane(Vec3{0, 0, 0}, Vec3{1, 0, 0}),
			NewPlane(Vec3{w - 1, 0, 0}, Vec3{-1, 0, 0}),
		},
	}
}

func (p *Pipeline) Width() int {
	return p.width
}

func (p *Pipeline) Height() int {
	return p.height
}

func (p *Pipeline) Projection() Matrix4 {
	return p.projection
}

// WorldMatrix places the model for a frame at spin angle theta:
// RotZ(theta/2 + RotationZ) * RotX(theta/2 + RotationX) * Trans.
func WorldMatrix(w WorldTransform, theta float32) Matrix4 {
	rotZ := NewRotationMatrix(ROTZ, theta*0.5+w.RotationZ)
	rotX := NewRotationMatrix(ROTX, theta*0.5+w.RotationX)
	trans := TransMatrix(w.Translation[0], w.Translation[1], w.Translation[2])
	return rotZ.MultiplyBy(rotX).MultiplyBy(trans)
}

// Project runs every mesh triangle through world, cull, light, view, near
// clip and projection, and returns the screen-space results sorted back to
// front. The results are not yet clipped to the screen edges.
func (p *Pipeline) Project(mesh *Mesh, cam *Camera, world Matrix4) ([]Triangle, FrameStats) {
	stats := FrameStats{Source: mesh.Len()}
	view := cam.ViewMatrix()
	out := make([]Triangle, 0, mesh.Len())

	mesh.Each(func(_ int, src Triangle) {
		tri := src.Transform(world)

		normal := tri.Normal()
		if normal.Dot(tri.P[0].Sub(cam.Position)) >= 0 {
			stats.Culled++
			return
		}

		tri.Col = shade(normal)
		viewed := tri.Transform(view)

		clipped := p.near.ClipTriangle(viewed)
		if len(clipped) != 1 || clipped[0] != viewed {
			stats.NearClipped++
		}

		for _, c := range clipped {
			screen, ok := p.toScreen(c)
			if !ok {
				stats.Dropped++
				continue
			}
			out = append(out, screen)
		}
	})

	stats.Projected = len(out)
	SortBackToFront(out)
	return out, stats
}

// ClipToScreen clips t against the top, bottom, left and right edges in
// that order. Each edge clips every piece the previous edge produced.
func (p *Pipeline) ClipToScreen(t Triangle) []Triangle {
	queue := []Triangle{t}
	for _, plane := range p.screen {
		n := len(queue)
		for i := 0; i < n; i++ {
			queue = append(queue, plane.ClipTriangle(queue[i])...)
		}
		queue = queue[n:]
	}
	return queue
}

// Frame projects the mesh and clips the result to the screen. The returned
// fragments are in draw order.
func (p *Pipeline) Frame(mesh *Mesh, cam *Camera, world Matrix4) ([]Triangle, FrameStats) {
	projected, stats := p.Project(mesh, cam, world)
	frags := make([]Triangle, 0, len(projected))
	for _, t := range projected {
		frags = append(frags, p.ClipToScreen(t)...)
	}
	stats.Fragments = len(frags)
	return frags, stats
}

// Render fills frags in order.
func (p *Pipeline) Render(r Rasterizer, frags []Triangle) {
	for _, t := range frags {
		r.FillTriangle(t)
	}
}

// toScreen projects a view-space triangle and maps it to pixels. It fails
// if any vertex lands at or behind the eye.
func (p *Pipeline) toScreen(t Triangle) (Triangle, bool) {
	scale := Vec3{0.5 * float32(p.width), 0.5 * float32(p.height), 1}
	flip := Vec3{-1, -1, 1}
	offset := Vec3{1, 1, 0}

	out := Triangle{Col: t.Col}
	for i, v := range t.P {
		ndc, ok := NewVec4(v, 1).MulMatrix(p.projection).PerspectiveDivide()
		if !ok {
			return Triangle{}, false
		}
		out.P[i] = ndc.Mul(flip).Add(offset).Mul(scale)
	}
	return out, true
}

func shade(normal Vec3) color.RGBA {
	dp := max(lightDirection.Dot(normal), minLight)
	g := uint8(dp * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}
