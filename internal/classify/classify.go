// Package classify determines the element category and the governing
// code path from section geometry ratios.
package classify

import (
	"github.com/alexiusacademia/gorcv/internal/model"
)

// Classification thresholds. Boundary values are inclusive: a ratio
// exactly on a limit takes the >= branch.
const (
	WallAspectLimit      = 4.0 // lw/tw at or above: wall geometry
	ColumnMinAspectRatio = 0.4 // tw/lw below: too thin to be a frame column
	WallPierHwLwLimit    = 2.0 // hw/lw below: squat wall / wall pier
)

// Governing code section tags.
const (
	SectionColumn   = "22.5"
	SectionWall     = "18.10"
	SectionWallPier = "18.10.8"
)

// Classify runs the fixed decision sequence over the section extents.
// The order matters: the wall-pier split only applies to elements that
// ended up classified as walls.
func Classify(e *model.Element) (model.ClassificationResult, error) {
	if e.Lw <= 0 || e.Tw <= 0 || e.Hw <= 0 {
		return model.ClassificationResult{}, model.Inputf(
			"classification requires positive dimensions (lw=%.1f tw=%.1f hw=%.1f)", e.Lw, e.Tw, e.Hw)
	}

	res := model.ClassificationResult{
		LwTw: e.Lw / e.Tw,
		TwLw: e.Tw / e.Lw,
		HwLw: e.Hw / e.Lw,
	}

	wall := res.LwTw >= WallAspectLimit
	if !wall {
		// Column-geometry candidate. A section thinner than 0.4 of its
		// length is still a wall regardless of lw/tw.
		if res.TwLw < ColumnMinAspectRatio {
			wall = true
		} else {
			res.Type = model.TypeColumn
			res.Section = SectionColumn
			return res, nil
		}
	}

	if res.HwLw >= WallPierHwLwLimit {
		// Slender wall, flexure-controlled.
		res.Type = model.TypeWall
		res.Section = SectionWall
	} else {
		// Squat wall, shear-controlled; wall-pier provisions apply.
		res.Type = model.TypeWallPier
		res.Section = SectionWallPier
	}
	return res, nil
}
