package layout

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Canvas is the fixed-geometry base document: page sizes plus the static
// print (labels and rules) that every filled document carries.
type Canvas struct {
	Name  string `yaml:"name"`
	Pages []Page `yaml:"pages"`
}

// Page is one canvas page in points.
type Page struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Labels []Label `yaml:"labels"`
	Rules  []Rule  `yaml:"rules"`
}

// Label is static text printed on the page.
type Label struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
	Text string  `yaml:"text"`
}

// Rule is a static line segment.
type Rule struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

// ParseCanvas decodes a canvas definition and checks its geometry.
func ParseCanvas(data []byte) (Canvas, error) {
	var c Canvas
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Canvas{}, fmt.Errorf("decoding canvas: %w", err)
	}
	if len(c.Pages) == 0 {
		return Canvas{}, fmt.Errorf("canvas %q has no pages", c.Name)
	}
	for i, p := range c.Pages {
		if p.Width <= 0 || p.Height <= 0 {
			return Canvas{}, fmt.Errorf("canvas %q page %d has no size", c.Name, i)
		}
	}
	return c, nil
}

// Font is an optional TrueType resource. A nil *Font means the renderer's
// built-in face.
type Font struct {
	Name string
	Data []byte
}

// Document is the immutable output of a successful render.
type Document struct {
	Bytes       []byte
	ContentType string
	Warnings    []OverflowWarning
}
