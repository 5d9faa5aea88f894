// Package preview renders palettes as images for debugging and converts
// indexed images into palette colors.
//
// A bank swatch is a 16x16 grid, one row per slot, scaled up with
// nearest-neighbor sampling so every color stays a flat square.
package preview
