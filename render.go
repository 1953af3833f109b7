package main

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

// tierColors maps each tier to its marker and stroke color.
var tierColors = map[Tier]color.Color{
	TierExpress:  color.RGBA{220, 40, 40, 255},
	TierStandard: color.RGBA{240, 160, 30, 255},
	TierEconomy:  color.RGBA{50, 90, 220, 255},
}

var (
	obstacleColor = color.RGBA{60, 60, 60, 255}
	originColor   = color.RGBA{30, 170, 60, 255}
)

// RenderPlanPNG draws the grid with its obstacle rectangles, every found
// route as a polyline colored by tier, markers for the destinations and the
// origin, and saves the image. scale is the pixel width of one cell.
func RenderPlanPNG(g *Grid, plan *DeliveryPlan, filename string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d: must be at least 1 pixel per cell", scale)
	}

	dc := gg.NewContext(g.Cols*scale, g.Rows*scale)
	dc.SetColor(color.White)
	dc.Clear()

	// cell (x, y): pixel column from the column index, pixel row from the
	// row index
	cellCenter := func(c Cell) (float64, float64) {
		return float64(c.Y*scale) + float64(scale)/2, float64(c.X*scale) + float64(scale)/2
	}

	dc.SetColor(obstacleColor)
	for _, rect := range ObstacleRects(g) {
		dc.DrawRectangle(
			float64(rect.MinY*scale), float64(rect.MinX*scale),
			float64((rect.MaxY-rect.MinY+1)*scale), float64((rect.MaxX-rect.MinX+1)*scale),
		)
		dc.Fill()
	}

	for _, route := range plan.Routes {
		if !route.Found || len(route.Path) < 2 {
			continue
		}
		dc.SetColor(tierColors[route.Tier])
		dc.SetLineWidth(float64(scale) / 3)
		px, py := cellCenter(route.Path[0])
		dc.MoveTo(px, py)
		for _, c := range route.Path[1:] {
			px, py = cellCenter(c)
			dc.LineTo(px, py)
		}
		dc.Stroke()
	}

	// markers go on top of the route strokes
	for _, route := range plan.Routes {
		dc.SetColor(tierColors[route.Tier])
		px, py := cellCenter(route.Target)
		dc.DrawCircle(px, py, float64(scale)/2.5)
		dc.Fill()
	}

	dc.SetColor(originColor)
	px, py := cellCenter(plan.Origin)
	dc.DrawCircle(px, py, float64(scale)/2)
	dc.Fill()

	return dc.SavePNG(filename)
}
