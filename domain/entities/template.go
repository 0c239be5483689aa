package entities

import "time"

// VoucherTemplate is the admin-authored voucher layout. Images are stored as
// inline data URIs so the renderer never reaches out to object storage.
type VoucherTemplate struct {
	Id              string            `json:"id" bson:"_id"`
	Name            string            `json:"name" bson:"name"`
	BackgroundColor string            `json:"background_color" bson:"background_color"`
	BackgroundImage string            `json:"background_image" bson:"background_image,omitempty"`
	LogoImage       string            `json:"logo_url" bson:"logo_url,omitempty"`
	Elements        []TemplateElement `json:"elements" bson:"elements"`
	IsDefault       bool              `json:"is_default" bson:"is_default"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}

// TemplateElement positions one text field. X, Y and Width are percentages of
// the page in [0,100]; X/Y name the horizontal center of the block. Values
// outside the range are not validated and will place content off-page.
type TemplateElement struct {
	X          float64 `json:"x" bson:"x"`
	Y          float64 `json:"y" bson:"y"`
	Width      float64 `json:"width" bson:"width,omitempty"`
	Content    string  `json:"content" bson:"content"`
	Color      string  `json:"color" bson:"color,omitempty"`
	FontSize   float64 `json:"font_size" bson:"font_size,omitempty"`
	FontWeight string  `json:"font_weight" bson:"font_weight,omitempty"`
	Align      string  `json:"align" bson:"align,omitempty"`
}

const FontWeightBold = "bold"

const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)
