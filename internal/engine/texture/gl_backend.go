package texture

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glBackend uploads textures through OpenGL.
type glBackend struct{}

func (glBackend) Upload(img *decoded) (uint32, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Pixels are always tightly packed RGBA; the source channel count only
	// selects the internal storage format.
	internal := int32(gl.RGBA8)
	if img.channels == 3 {
		internal = gl.RGB8
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal,
		int32(img.width), int32(img.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

func (glBackend) Bind(slot int32, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (glBackend) Delete(handles []uint32) {
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
