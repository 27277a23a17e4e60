// Package terminal presents rendered canvases on a tcell screen using half-block cells
// and maps terminal input to scene actions.
//
// One cell covers two vertically stacked layout pixels: the upper pixel is the
// foreground of '▀' and the lower pixel its background. Supersampled canvases are
// averaged down to layout pixels before presentation.
package terminal
