package domain

import "image"

// Bitmap is a decoded image ready to be drawn.
type Bitmap struct {
	Image  image.Image
	Width  int
	Height int
	// Format is the encoded format reported by the decoder ("png", "jpeg", ...).
	Format string
}

func NewBitmap(img image.Image, format string) Bitmap {
	bounds := img.Bounds()
	return Bitmap{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}
}
