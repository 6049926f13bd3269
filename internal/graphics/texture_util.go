package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadRGBA creates a 2D texture from img. Linear filtering lets a short
// baked ramp stretch smoothly across the window.
func UploadRGBA(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	upload(img)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// UpdateRGBA replaces the contents of texture, resizing it if needed
func UpdateRGBA(texture uint32, img *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	upload(img)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func upload(img *image.RGBA) {
	size := img.Rect.Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
}

// DeleteTexture releases texture if it is non-zero
func DeleteTexture(texture uint32) {
	if texture != 0 {
		gl.DeleteTextures(1, &texture)
	}
}
