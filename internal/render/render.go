// Package render produces the SVG markup for a placeholder image.
package render

import (
	"fmt"
	"html"
)

const svgTemplate = `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
    <rect width="100%%" height="100%%" fill="%s"/>
    <text x="50%%" y="50%%" font-family="Arial, sans-serif" font-size="20" font-weight="bold" 
          text-anchor="middle" dominant-baseline="middle" fill="#333">
      %s
    </text>
  </svg>`

// LabelColor is the fill used for the label text.
const LabelColor = "#333"

// SVG returns a width x height SVG document: a rectangle covering the whole
// canvas in color with label centered on top. Inputs are not validated;
// whatever is passed ends up in the markup.
func SVG(width, height int, color, label string) string {
	return fmt.Sprintf(svgTemplate, width, height, html.EscapeString(color), html.EscapeString(label))
}
