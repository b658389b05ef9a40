package orrery

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// vertexBatch accumulates solid-color triangles and submits them in a single
// DrawTriangles call against WhitePixel. One batch per blend mode per frame
// keeps the draw-call count flat regardless of star or segment counts.
type vertexBatch struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (b *vertexBatch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// vertex appends one vertex with a premultiplied color.
func (b *vertexBatch) vertex(x, y float64, col Color) {
	a := float32(col.A)
	b.verts = append(b.verts, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(col.R) * a,
		ColorG: float32(col.G) * a,
		ColorB: float32(col.B) * a,
		ColorA: a,
	})
}

// quad appends an axis-aligned square centered at (cx, cy) with half-extent
// half. Used for star points.
func (b *vertexBatch) quad(cx, cy, half float64, col Color) {
	base := uint16(len(b.verts))
	b.vertex(cx-half, cy-half, col)
	b.vertex(cx+half, cy-half, col)
	b.vertex(cx+half, cy+half, col)
	b.vertex(cx-half, cy+half, col)
	b.inds = append(b.inds,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// disc appends a filled circle as a triangle fan. The segment count adapts
// to the radius so small distant planets stay cheap.
func (b *vertexBatch) disc(cx, cy, r float64, col Color) {
	segs := discSegments(r)
	base := uint16(len(b.verts))
	b.vertex(cx, cy, col)
	for i := 0; i <= segs; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segs))
		b.vertex(cx+cos*r, cy+sin*r, col)
	}
	for i := 0; i < segs; i++ {
		b.inds = append(b.inds, base, base+1+uint16(i), base+2+uint16(i))
	}
}

func discSegments(r float64) int {
	segs := int(r)
	if segs < 12 {
		segs = 12
	}
	if segs > 64 {
		segs = 64
	}
	return segs
}

// ribbon appends a closed polyline of the given width as a triangle strip.
// Used for the projected orbit rings; points must already be in screen space.
func (b *vertexBatch) ribbon(points []Vec2, width float64, col Color) {
	n := len(points)
	if n < 3 {
		return
	}
	half := width / 2
	base := uint16(len(b.verts))

	for i := 0; i < n; i++ {
		prev := points[(i+n-1)%n]
		next := points[(i+1)%n]
		// Averaged edge direction gives a stable normal at the joint.
		dx := next.X - prev.X
		dy := next.Y - prev.Y
		l := math.Sqrt(dx*dx + dy*dy)
		if l == 0 {
			l = 1
		}
		nx := -dy / l
		ny := dx / l
		p := points[i]
		b.vertex(p.X+nx*half, p.Y+ny*half, col)
		b.vertex(p.X-nx*half, p.Y-ny*half, col)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a0 := base + uint16(2*i)
		a1 := base + uint16(2*i+1)
		b0 := base + uint16(2*j)
		b1 := base + uint16(2*j+1)
		b.inds = append(b.inds,
			a0, b0, a1,
			a1, b0, b1,
		)
	}
}

// rect appends a filled axis-aligned rectangle. Used for overlay backdrops.
func (b *vertexBatch) rect(x, y, w, h float64, col Color) {
	base := uint16(len(b.verts))
	b.vertex(x, y, col)
	b.vertex(x+w, y, col)
	b.vertex(x+w, y+h, col)
	b.vertex(x, y+h, col)
	b.inds = append(b.inds,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// submit issues the accumulated triangles as one draw call and resets the
// batch. No-op when empty.
func (b *vertexBatch) submit(dst *ebiten.Image, blend BlendMode) (drawCalls int) {
	if len(b.inds) == 0 {
		return 0
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = blend.EbitenBlend()
	dst.DrawTriangles(b.verts, b.inds, WhitePixel, op)
	b.reset()
	return 1
}
