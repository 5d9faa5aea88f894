// Package colorops implements the raw RGB555 color effects applied by palette
// banks: brightness, contrast, intensity, inversion, grayscale, hue shift,
// blend, fade and cyclic rotation.
//
// # Contract
//
// Every primitive reads len(src) colors from src and writes them to dst.
// Strengths are 5-bit levels in [0, 32] (types.Fixed.Level). Callers validate
// levels, counts and destination sizes before calling; the primitives never
// bounds-check and panic on short destinations.
//
// src and dst may alias. Per-color operations read each color before writing
// it, and Rotate stages its input in a scratch buffer, so in-place and
// out-of-place calls produce identical results.
//
// # Lookup Tables
//
// Contrast, intensity and hue shift are table driven. The tables have one row
// per level (33 rows) and are built once in init():
//
//	contrastLUT[level][channel]  ch*(1+v) - 31*v/2, clamped to [0, 31]
//	intensityLUT[level][channel] ch*(1+v),          clamped to [0, 31]
//	hueShiftLUT[level][0..8]     YIQ hue rotation matrix for angle 2π·level/32
//
// where v = level/32.
package colorops
