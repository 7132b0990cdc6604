package fimage_test

import (
	"fmt"
	"image"

	"floatimg/fimage"
)

func ExampleImage_Normalize() {
	grad := fimage.New(image.Rect(0, 0, 3, 1), 1)
	copy(grad.Pix, []float32{-2, 0, 6})

	norm := grad.Normalize()
	fmt.Println(norm.Pix)
	// Output: [0 0.25 1]
}

func ExampleImage_ToBytes() {
	m := fimage.New(image.Rect(0, 0, 3, 1), 1)
	copy(m.Pix, []float32{-20, 100.9, 300})

	gray := m.ToBytes().(*image.Gray)
	fmt.Println(gray.Pix)
	// Output: [0 100 255]
}
