package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/softrender"
)

// maxBatchVertices keeps batch indices inside uint16. strokeHeadroom is
// more than one triangle outline ever needs.
const (
	maxBatchVertices = 1<<16 - 1
	strokeHeadroom   = 64
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// EbitenRasterizer batches flat triangles into DrawTriangles calls on an
// ebiten screen. Batches are drawn in fill order, so painter's ordering
// is preserved.
type EbitenRasterizer struct {
	// Outline strokes every triangle edge in OutlineColor on top of its fill.
	Outline      bool
	OutlineColor color.RGBA

	screen   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
	stroke   vector.StrokeOptions
}

func NewEbitenRasterizer() *EbitenRasterizer {
	return &EbitenRasterizer{
		OutlineColor: color.RGBA{R: 0, G: 255, B: 0, A: 255},
		op:           ebiten.DrawTrianglesOptions{AntiAlias: true},
		stroke:       vector.StrokeOptions{Width: 1},
	}
}

// Begin points the rasterizer at this frame's screen.
func (r *EbitenRasterizer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func (r *EbitenRasterizer) Clear(c color.RGBA) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	r.screen.Fill(c)
}

func (r *EbitenRasterizer) FillTriangle(t softrender.Triangle) {
	if len(r.vertices)+3+strokeHeadroom > maxBatchVertices {
		r.Flush()
	}

	start := len(r.vertices)
	base := uint16(start)
	for _, p := range t.P {
		r.vertices = append(r.vertices, ebiten.Vertex{DstX: p.X, DstY: p.Y})
	}
	r.indices = append(r.indices, base, base+1, base+2)
	paint(r.vertices[start:], t.Col)

	if r.Outline {
		r.appendOutline(t)
	}
}

func (r *EbitenRasterizer) appendOutline(t softrender.Triangle) {
	var path vector.Path
	path.MoveTo(t.P[0].X, t.P[0].Y)
	path.LineTo(t.P[1].X, t.P[1].Y)
	path.LineTo(t.P[2].X, t.P[2].Y)
	path.Close()

	start := len(r.vertices)
	r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices, r.indices, &r.stroke)
	paint(r.vertices[start:], r.OutlineColor)
}

// paint colors vertices solid and points them at the white texel.
func paint(vertices []ebiten.Vertex, clr color.RGBA) {
	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
	}
}

// Flush draws everything batched since the last flush.
func (r *EbitenRasterizer) Flush() {
	if len(r.indices) == 0 {
		return
	}
	r.screen.DrawTriangles(r.vertices, r.indices, whiteSub, &r.op)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// Present flushes the remaining batch; ebiten shows the screen itself.
func (r *EbitenRasterizer) Present() error {
	r.Flush()
	return nil
}
