// Package pixel bridges chroma colors and the standard library's image
// types. It samples single pixels, maps a color function over a whole
// image, and packs flattened channel data to and from image buffers.
//
// All functions work on 8-bit RGBA: arbitrary image.Image inputs are
// normalized to *image.RGBA first, and channel values match what the
// image's color model reports (alpha-premultiplied for most decoders).
package pixel
