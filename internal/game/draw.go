package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/lighting"
	"chosenoffset.com/raycaster/internal/world/grid"
)

const (
	cellPadding   = 0.02 // Top-down cell inset, in cells
	playerSize    = 0.05 // Top-down player square, in world units
	headingLength = 0.1  // Top-down heading line, in world units
	headingDot    = 3    // Pixels

	minimapFraction = 4 // Minimap side is the short screen side divided by this
	minimapMargin   = 8
)

var (
	playerColor  = color.RGBA{0, 255, 0, 255}
	headingColor = color.RGBA{255, 255, 0, 255}
	visionColor  = color.NRGBA{255, 255, 255, 40}
	hudColor     = color.RGBA{255, 255, 255, 255}
	minimapBack  = color.NRGBA{0, 0, 0, 160}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	switch g.View {
	case ViewTopDown:
		g.drawTopDown(screen)
	default:
		g.drawFirstPerson(screen)
		if g.ShowMinimap {
			g.drawMinimap(screen)
		}
	}

	if g.ShowHUD {
		g.drawHUD(screen)
	}
}

// drawFirstPerson draws the ceiling and floor halves, then one slice per
// visible column.
func (g *Game) drawFirstPerson(screen render.Image) {
	w, h := screen.Size()
	fw, fh := float64(w), float64(h)

	g.Renderer.FillRect(screen, 0, 0, float32(fw), float32(fh/2), lighting.ToColor(g.Ceiling))
	g.Renderer.FillRect(screen, 0, float32(fh/2), float32(fw), float32(fh/2), lighting.ToColor(g.Floor))

	s := g.Session
	colWidth := fw / float64(s.Projector.Rays)
	for _, col := range s.Columns() {
		x := float64(col.Index) * colWidth
		half := col.HalfHeight * fh / 2
		top := fh/2 - half

		switch surface := s.Palette.Surface(col).(type) {
		case projection.ColorSurface:
			y0, y1 := clampSpan(top, top+2*half, fh)
			g.Renderer.FillRect(screen, float32(x), float32(y0), float32(colWidth), float32(y1-y0),
				lighting.Shaded(surface.Color, col.Shade))
		case projection.TextureSurface:
			g.drawTexturedSlice(screen, x, colWidth, top, 2*half, fh, surface, col.Shade)
		}
	}
}

// drawTexturedSlice maps the surface's UV window onto one screen column,
// trimming the part that falls off screen.
func (g *Game) drawTexturedSlice(screen render.Image, x, width, top, height, screenH float64, surface projection.TextureSurface, shade float64) {
	tex, ok := g.Textures[surface.Texture]
	if !ok || height <= 0 {
		return
	}
	tw, th := tex.Size()

	y0, y1 := clampSpan(top, top+height, screenH)
	uv := surface.UV
	v0 := uv.V0 + (y0-top)/height*(uv.V1-uv.V0)
	v1 := uv.V0 + (y1-top)/height*(uv.V1-uv.V0)

	tint := lighting.TextureTint(shade)
	vertex := func(dx, dy, u, v float64) render.Vertex {
		return render.Vertex{
			DstX: float32(dx), DstY: float32(dy),
			SrcX: float32(u * float64(tw)), SrcY: float32(v * float64(th)),
			ColorR: tint.R, ColorG: tint.G, ColorB: tint.B, ColorA: tint.A,
		}
	}
	vertices := []render.Vertex{
		vertex(x, y0, uv.U0, v0),
		vertex(x+width, y0, uv.U1, v0),
		vertex(x, y1, uv.U0, v1),
		vertex(x+width, y1, uv.U1, v1),
	}
	indices := []uint16{0, 1, 2, 1, 2, 3}

	screen.DrawTriangles(vertices, indices, tex, &render.DrawTrianglesOptions{
		Address: render.AddressRepeat,
	})
}

// drawTopDown fills the screen with the plan view.
func (g *Game) drawTopDown(screen render.Image) {
	screen.Fill(color.Black)
	g.drawPlan(screen)
}

// drawMinimap draws the plan view into an offscreen image in the top-right
// corner. The image is recreated when the screen size changes.
func (g *Game) drawMinimap(screen render.Image) {
	w, h := screen.Size()
	size := min(w, h) / minimapFraction
	if size <= 0 {
		return
	}

	if g.minimap == nil || g.minimapSize != size {
		if g.minimap != nil {
			g.minimap.Dispose()
		}
		g.minimap = g.Renderer.NewImage(size, size)
		g.minimapSize = size
	}

	g.minimap.Clear()
	g.Renderer.FillRect(g.minimap, 0, 0, float32(size), float32(size), minimapBack)
	g.drawPlan(g.minimap)

	op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	op.GeoM.Translate(float64(w-size-minimapMargin), float64(minimapMargin))
	screen.DrawImage(g.minimap, op)
}

// drawPlan draws the grid, the vision polygon, the rays and the viewer
// scaled to the target image.
func (g *Game) drawPlan(screen render.Image) {
	w, h := screen.Size()
	s := g.Session

	gr := s.Map.Grid
	padX, padY := cellPadding*gr.CellWidth(), cellPadding*gr.CellHeight()
	for row := 0; row < gr.Height(); row++ {
		for col := 0; col < gr.Width(); col++ {
			code := gr.At(col, row)
			if code == grid.Open {
				continue
			}
			minX, minY, maxX, maxY := gr.CellBounds(col, row)
			x0, y0 := WorldToScreen(raycast.Point{X: minX + padX, Y: maxY - padY}, w, h)
			x1, y1 := WorldToScreen(raycast.Point{X: maxX - padX, Y: minY + padY}, w, h)
			g.Renderer.FillRect(screen, x0, y0, x1-x0, y1-y0, lighting.ToColor(s.Palette.Material(code).Color))
		}
	}

	hits := s.Hits()
	poly := raycast.VisibilityPolygon(s.Pose.Pos, hits, s.Projector.MaxDistance)
	points := make([]render.Point, len(poly))
	for i, p := range poly {
		points[i].X, points[i].Y = WorldToScreen(p, w, h)
	}
	g.Renderer.FillPolygon(screen, points, visionColor)

	ox, oy := WorldToScreen(s.Pose.Pos, w, h)
	for _, hit := range hits {
		if hit.IsMiss() {
			continue
		}
		hx, hy := WorldToScreen(hit.Point, w, h)
		rayColor := lighting.ToColor(s.Palette.Material(hit.Code).Color)
		g.Renderer.StrokeLine(screen, ox, oy, hx, hy, 1, rayColor)
	}

	half := playerSize / 2
	px0, py0 := WorldToScreen(raycast.Point{X: s.Pose.Pos.X - half, Y: s.Pose.Pos.Y + half}, w, h)
	px1, py1 := WorldToScreen(raycast.Point{X: s.Pose.Pos.X + half, Y: s.Pose.Pos.Y - half}, w, h)
	g.Renderer.FillRect(screen, px0, py0, px1-px0, py1-py0, playerColor)

	tip := raycast.Along(s.Pose.Pos, s.Pose.Dir, headingLength)
	tx, ty := WorldToScreen(tip, w, h)
	g.Renderer.StrokeLine(screen, ox, oy, tx, ty, 2, headingColor)
	g.Renderer.FillCircle(screen, tx, ty, headingDot, headingColor)
}

func (g *Game) drawHUD(screen render.Image) {
	pose := g.Session.Pose
	status := fmt.Sprintf("%3.0f FPS  pos (%.2f, %.2f)  dir %.2f  %s  [Tab] view  [M] map  [Esc] quit",
		g.FPS, pose.Pos.X, pose.Pos.Y, pose.Dir, g.View)
	g.Renderer.DrawText(screen, status, 8, 8, hudColor, 1.0)

	y := 30
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 8, y, color.NRGBA{255, 255, 255, alpha}, 1.0)
		_, lineH := g.Renderer.MeasureText(msg.Text, 1.0)
		y += lineH + 4
	}
}

// WorldToScreen maps world coordinates ([-1, 1], y up) to pixels (y down).
func WorldToScreen(p raycast.Point, w, h int) (float32, float32) {
	return float32((p.X + 1) / 2 * float64(w)), float32((1 - p.Y) / 2 * float64(h))
}

// clampSpan limits [y0, y1] to the screen's vertical extent.
func clampSpan(y0, y1, screenH float64) (float64, float64) {
	return math.Max(y0, 0), math.Min(y1, screenH)
}
