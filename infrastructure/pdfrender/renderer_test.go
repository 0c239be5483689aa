package pdfrender

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vouchers-system/domain/entities"
	"vouchers-system/utils/logger"
	"vouchers-system/utils/shortcodes"
)

func testResolver() *shortcodes.Resolver {
	orderDate := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	return shortcodes.NewResolver(shortcodes.OrderContext{
		Code:          "DEADBEEF",
		CustomerName:  "Aoife Byrne",
		CustomerEmail: "aoife@example.com",
		ProductName:   "Memorial Tribute Voucher",
		Amount:        49.90,
		OrderDate:     orderDate,
		ExpiryDate:    orderDate.AddDate(1, 0, 0),
	})
}

func testRenderer() *Renderer {
	lg, _ := logger.NewLogger("test")
	return NewRenderer(lg)
}

func inlinePNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 41, B: 59, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png err %v", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestNormalizeElement(t *testing.T) {
	tests := []struct {
		name      string
		element   entities.TemplateElement
		wantLeft  float64
		wantTop   float64
		wantWidth float64
	}{
		{
			name:      "test-case-1 centered block",
			element:   entities.TemplateElement{X: 50, Y: 50, Width: 80},
			wantLeft:  0.1 * PageWidth,
			wantTop:   0.5 * PageHeight,
			wantWidth: 0.8 * PageWidth,
		},
		{
			name:      "test-case-2 width defaults to 80 percent",
			element:   entities.TemplateElement{X: 50, Y: 10},
			wantLeft:  0.1 * PageWidth,
			wantTop:   0.1 * PageHeight,
			wantWidth: 0.8 * PageWidth,
		},
		{
			name:      "test-case-3 out of range placed off page, not clamped",
			element:   entities.TemplateElement{X: 0, Y: 0, Width: 40},
			wantLeft:  -0.2 * PageWidth,
			wantTop:   0,
			wantWidth: 0.4 * PageWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, top, width := NormalizeElement(tt.element)
			assert.InDelta(t, tt.wantLeft, left, 0.001)
			assert.InDelta(t, tt.wantTop, top, 0.001)
			assert.InDelta(t, tt.wantWidth, width, 0.001)
		})
	}
}

func TestRenderer_Fallback(t *testing.T) {
	buf, err := testRenderer().Render(nil, testResolver())

	assert.NoError(t, err)
	assert.NotEmpty(t, buf)
	assert.True(t, bytes.HasPrefix(buf, []byte("%PDF")))
}

func TestRenderer_Template(t *testing.T) {
	template := &entities.VoucherTemplate{
		Id:              "tpl-1",
		Name:            "Classic",
		BackgroundColor: "#1E2430",
		LogoImage:       inlinePNG(t),
		Elements: []entities.TemplateElement{
			{X: 50, Y: 20, Content: "Gift Voucher", Color: "#FFFFFF", FontSize: 30, FontWeight: "bold", Align: "center"},
			{X: 50, Y: 40, Content: "[voucher_code]", Color: "#D6B55D", FontSize: 24, Align: "center"},
			{X: 50, Y: 55, Content: "[recipient_message]", FontSize: 14, Align: "center"},
			{X: 50, Y: 70, Content: "Worth [voucher_value], valid until [expiry_date]", FontSize: 12, Align: "center"},
		},
	}

	buf, err := testRenderer().Render(template, testResolver())

	assert.NoError(t, err)
	assert.NotEmpty(t, buf)
	assert.True(t, bytes.HasPrefix(buf, []byte("%PDF")))
}

func TestRenderer_CorruptBackgroundImage(t *testing.T) {
	tests := []struct {
		name  string
		image string
	}{
		{name: "test-case-1 corrupt base64", image: "data:image/png;base64,!!!!not-base64!!!!"},
		{name: "test-case-2 valid base64 broken raster", image: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not a png"))},
		{name: "test-case-3 not a data uri", image: "https://cdn.example.com/bg.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := &entities.VoucherTemplate{
				Id:              "tpl-broken",
				BackgroundColor: "#1E2430",
				BackgroundImage: tt.image,
				Elements: []entities.TemplateElement{
					{X: 50, Y: 50, Content: "[voucher_code]", Align: "center"},
				},
			}

			buf, err := testRenderer().Render(template, testResolver())

			assert.NoError(t, err)
			assert.NotEmpty(t, buf)
		})
	}
}

func TestDecodeInlineImage(t *testing.T) {
	data, imageType, err := decodeInlineImage(inlinePNG(t))
	assert.NoError(t, err)
	assert.Equal(t, "PNG", imageType)
	assert.NotEmpty(t, data)

	_, _, err = decodeInlineImage("data:image/png;base64,Zm9v")
	assert.Error(t, err)
}
