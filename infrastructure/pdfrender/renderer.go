package pdfrender

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"vouchers-system/domain/entities"
	"vouchers-system/utils/shortcodes"
)

const (
	fontFamily    = "Helvetica"
	logoWidth     = 160.0
	logoTop       = 40.0
	lineHeightEm  = 1.3
	fallbackColor = "#1E293B"
)

type Renderer struct {
	Logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{Logger: logger}
}

// Render produces one single-page A4 voucher document. A nil template selects
// the hard-coded fallback layout so an order is never unfulfillable because no
// admin template exists.
func (r *Renderer) Render(template *entities.VoucherTemplate, resolver *shortcodes.Resolver) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if template == nil {
		r.drawFallback(pdf, resolver)
	} else {
		r.drawTemplate(pdf, template, resolver)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (r *Renderer) drawTemplate(pdf *gofpdf.Fpdf, template *entities.VoucherTemplate, resolver *shortcodes.Resolver) {
	r.fillBackground(pdf, template.BackgroundColor)

	if template.BackgroundImage != "" {
		r.drawImage(pdf, "background", template.BackgroundImage, 0, 0, PageWidth, PageHeight)
	}

	if template.LogoImage != "" {
		r.drawImage(pdf, "logo", template.LogoImage, (PageWidth-logoWidth)/2, logoTop, logoWidth, 0)
	}

	// list order is draw order, later elements paint over earlier ones
	for _, el := range template.Elements {
		r.drawElement(pdf, el, resolver)
	}
}

func (r *Renderer) fillBackground(pdf *gofpdf.Fpdf, color string) {
	red, green, blue := parseHexColor(color, fallbackColor)
	pdf.SetFillColor(red, green, blue)
	pdf.Rect(0, 0, PageWidth, PageHeight, "F")
}

// drawImage registers and paints one inline image; decode failures are logged
// and skipped so the rest of the page still renders.
func (r *Renderer) drawImage(pdf *gofpdf.Fpdf, name, dataURI string, x, y, w, h float64) {
	data, imageType, err := decodeInlineImage(dataURI)
	if err != nil {
		r.Logger.With(zap.String("image", name)).
			With(zap.Error(err)).
			Warn("VOUCHER_IMAGE_DECODE")
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func (r *Renderer) drawElement(pdf *gofpdf.Fpdf, el entities.TemplateElement, resolver *shortcodes.Resolver) {
	content := resolver.Resolve(el.Content)
	left, top, width := NormalizeElement(el)

	fontSize := el.FontSize
	if fontSize == 0 {
		fontSize = 14
	}

	style := ""
	if el.FontWeight == entities.FontWeightBold {
		style = "B"
	}

	red, green, blue := parseHexColor(el.Color, "#FFFFFF")
	pdf.SetTextColor(red, green, blue)
	pdf.SetFont(fontFamily, style, fontSize)

	pdf.SetXY(left, top)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(width, fontSize*lineHeightEm, tr(content), "", alignString(el.Align), false)
}

func alignString(align string) string {
	switch align {
	case entities.AlignCenter:
		return "C"
	case entities.AlignRight:
		return "R"
	default:
		return "L"
	}
}

func parseHexColor(color, fallback string) (red, green, blue int) {
	hex := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(hex) != 6 {
		hex = strings.TrimPrefix(fallback, "#")
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		value, _ = strconv.ParseUint(strings.TrimPrefix(fallback, "#"), 16, 32)
	}

	return int(value >> 16 & 0xFF), int(value >> 8 & 0xFF), int(value & 0xFF)
}
