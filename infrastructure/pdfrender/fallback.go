package pdfrender

import (
	"github.com/jung-kurt/gofpdf"

	"vouchers-system/utils/shortcodes"
)

// drawFallback paints the hard-coded voucher layout used when no default
// template has been configured. Positions are static, not data-driven.
func (r *Renderer) drawFallback(pdf *gofpdf.Fpdf, resolver *shortcodes.Resolver) {
	r.fillBackground(pdf, fallbackColor)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	center := func(y, size float64, style, text string) {
		pdf.SetFont(fontFamily, style, size)
		pdf.SetXY(PageWidth*0.1, y)
		pdf.MultiCell(PageWidth*0.8, size*lineHeightEm, tr(text), "", "C", false)
	}

	pdf.SetTextColor(255, 255, 255)
	center(180, 32, "B", "Gift Voucher")
	center(260, 18, "", resolver.Value(shortcodes.TokenProductName))

	pdf.SetTextColor(214, 181, 93)
	center(370, 12, "B", "VOUCHER CODE")
	center(395, 28, "B", resolver.Value(shortcodes.TokenVoucherCode))

	pdf.SetTextColor(255, 255, 255)
	center(480, 22, "B", resolver.Value(shortcodes.TokenVoucherValue))
	center(540, 12, "", "Valid until "+resolver.Value(shortcodes.TokenExpiryDate))
}
