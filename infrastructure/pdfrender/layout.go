package pdfrender

import (
	"vouchers-system/domain/entities"
)

// A4 in points.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
)

const defaultWidthPercent = 80

// NormalizeElement converts an element's percentage coordinates into absolute
// page points. X/Y name the horizontal center of the text block, so the
// returned left edge is xPt - widthPt/2. Template authors position elements
// visually against this convention; do not change it.
func NormalizeElement(el entities.TemplateElement) (left, top, width float64) {
	widthPercent := el.Width
	if widthPercent == 0 {
		widthPercent = defaultWidthPercent
	}

	xPt := el.X / 100 * PageWidth
	top = el.Y / 100 * PageHeight
	width = widthPercent / 100 * PageWidth
	left = xPt - width/2

	return
}
