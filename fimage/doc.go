// Package fimage holds images as float32 sample arrays so that pixel
// arithmetic can run before the values are re-quantized to 8 bits.
package fimage
