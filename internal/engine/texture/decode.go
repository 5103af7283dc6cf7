package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Registered decoders for the scene's image formats.
	_ "image/jpeg"
	_ "image/png"
)

// decoded holds raw RGBA pixel rows ready for GPU upload, already flipped
// vertically so row 0 is the bottom of the image (OpenGL convention).
type decoded struct {
	pix      []uint8
	width    int
	height   int
	channels int // 3 or 4, from the source image
}

// decodeFile reads and decodes the image at path. Only 3- and 4-channel
// sources are accepted; grayscale and paletted images are rejected.
func decodeFile(path string) (*decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	channels, err := channelCount(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rgba := toRGBA(img)
	flipVertical(rgba)

	b := rgba.Bounds()
	return &decoded{
		pix:      rgba.Pix,
		width:    b.Dx(),
		height:   b.Dy(),
		channels: channels,
	}, nil
}

// channelCount reports the channel depth of the source image.
func channelCount(img image.Image) (int, error) {
	switch src := img.(type) {
	case *image.YCbCr:
		return 3, nil
	case *image.RGBA:
		if src.Opaque() {
			return 3, nil
		}
		return 4, nil
	case *image.NRGBA:
		if src.Opaque() {
			return 3, nil
		}
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedFormat, img)
	}
}

// toRGBA converts any decoded image to tightly packed RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Bounds().Dx()*4 {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// flipVertical mirrors the image rows in place.
func flipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	stride := img.Stride
	tmp := make([]uint8, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bot := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}
