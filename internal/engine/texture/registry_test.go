package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/deskscene/internal/logger"
)

func TestMain(m *testing.M) {
	// Silent logger for tests.
	_ = logger.InitWithFileConfig("error", logger.FileConfig{}, false)
	os.Exit(m.Run())
}

// fakeBackend records GPU calls instead of touching OpenGL.
type fakeBackend struct {
	uploads []*decoded
	binds   [][2]uint32 // slot, handle
	deleted []uint32
	next    uint32
}

func (f *fakeBackend) Upload(img *decoded) (uint32, error) {
	f.uploads = append(f.uploads, img)
	f.next++
	return f.next, nil
}

func (f *fakeBackend) Bind(slot int32, handle uint32) {
	f.binds = append(f.binds, [2]uint32{uint32(slot), handle})
}

func (f *fakeBackend) Delete(handles []uint32) {
	f.deleted = append(f.deleted, handles...)
}

// writePNG writes a 2x2 test image. If withAlpha is true one pixel is
// translucent, making the PNG a 4-channel image.
func writePNG(t *testing.T, dir, name string, withAlpha bool) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	a := uint8(255)
	if withAlpha {
		a = 128
	}
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: a})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
	return path
}

func writeGrayPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
	return path
}

func TestRegisterAndResolve(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	r := newWithBackend(backend)

	tags := []string{"desk_top", "keyboard", "screen"}
	for i, tag := range tags {
		path := writePNG(t, dir, fmt.Sprintf("img%d.png", i), false)
		if err := r.Register(path, tag); err != nil {
			t.Fatalf("Register(%q): %v", tag, err)
		}
	}

	if r.Len() != len(tags) {
		t.Fatalf("Len: got %d, want %d", r.Len(), len(tags))
	}

	// Slots equal registration order.
	for i, tag := range tags {
		slot, err := r.ResolveSlot(tag)
		if err != nil {
			t.Fatalf("ResolveSlot(%q): %v", tag, err)
		}
		if slot != int32(i) {
			t.Errorf("ResolveSlot(%q): got %d, want %d", tag, slot, i)
		}
	}
}

func TestResolveUnknownTag(t *testing.T) {
	r := newWithBackend(&fakeBackend{})

	_, err := r.ResolveSlot("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ResolveSlot on empty registry: got %v, want ErrNotFound", err)
	}
}

func TestRegisterDuplicateTag(t *testing.T) {
	dir := t.TempDir()
	r := newWithBackend(&fakeBackend{})
	path := writePNG(t, dir, "img.png", false)

	if err := r.Register(path, "desk_top"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := r.Register(path, "desk_top")
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate Register: got %v, want ErrDuplicate", err)
	}
	if r.Len() != 1 {
		t.Errorf("registry size after duplicate: got %d, want 1", r.Len())
	}
}

func TestRegisterMissingFile(t *testing.T) {
	r := newWithBackend(&fakeBackend{})

	err := r.Register("/no/such/file.png", "ghost")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("missing file: got %v, want ErrDecode", err)
	}
	if r.Len() != 0 {
		t.Errorf("registry size after failure: got %d, want 0", r.Len())
	}
}

func TestRegisterGrayImage(t *testing.T) {
	dir := t.TempDir()
	r := newWithBackend(&fakeBackend{})
	path := writeGrayPNG(t, dir, "gray.png")

	err := r.Register(path, "gray")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("gray image: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestRegisterCapacity(t *testing.T) {
	dir := t.TempDir()
	r := newWithBackend(&fakeBackend{})
	path := writePNG(t, dir, "img.png", false)

	for i := 0; i < MaxTextures; i++ {
		if err := r.Register(path, fmt.Sprintf("tex%d", i)); err != nil {
			t.Fatalf("Register %d: %v", i, err)
		}
	}

	err := r.Register(path, "overflow")
	if !errors.Is(err, ErrCapacity) {
		t.Errorf("over-capacity Register: got %v, want ErrCapacity", err)
	}
	if r.Len() != MaxTextures {
		t.Errorf("registry size after overflow: got %d, want %d", r.Len(), MaxTextures)
	}
}

func TestBindAll(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	r := newWithBackend(backend)
	path := writePNG(t, dir, "img.png", false)

	if err := r.Register(path, "a"); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(path, "b"); err != nil {
		t.Fatal(err)
	}

	r.BindAll()

	if len(backend.binds) != 2 {
		t.Fatalf("bind count: got %d, want 2", len(backend.binds))
	}
	// Slot i gets the i-th uploaded handle.
	if backend.binds[0] != [2]uint32{0, 1} {
		t.Errorf("first bind: got %v, want slot 0 handle 1", backend.binds[0])
	}
	if backend.binds[1] != [2]uint32{1, 2} {
		t.Errorf("second bind: got %v, want slot 1 handle 2", backend.binds[1])
	}
}

func TestReleaseAll(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	r := newWithBackend(backend)
	path := writePNG(t, dir, "img.png", false)

	if err := r.Register(path, "a"); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(path, "b"); err != nil {
		t.Fatal(err)
	}

	r.ReleaseAll()

	if len(backend.deleted) != 2 {
		t.Errorf("deleted handles: got %d, want 2", len(backend.deleted))
	}
	if r.Len() != 0 {
		t.Errorf("registry size after release: got %d, want 0", r.Len())
	}
	if _, err := r.ResolveSlot("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("resolve after release: got %v, want ErrNotFound", err)
	}
}

func TestDecodeChannels(t *testing.T) {
	dir := t.TempDir()

	rgb := writePNG(t, dir, "rgb.png", false)
	img, err := decodeFile(rgb)
	if err != nil {
		t.Fatalf("decode RGB: %v", err)
	}
	if img.channels != 3 {
		t.Errorf("RGB channels: got %d, want 3", img.channels)
	}
	if img.width != 2 || img.height != 2 {
		t.Errorf("dimensions: got %dx%d, want 2x2", img.width, img.height)
	}

	rgba := writePNG(t, dir, "rgba.png", true)
	img, err = decodeFile(rgba)
	if err != nil {
		t.Fatalf("decode RGBA: %v", err)
	}
	if img.channels != 4 {
		t.Errorf("RGBA channels: got %d, want 4", img.channels)
	}
}

func TestDecodeFlipsVertically(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "flip.png", false)

	img, err := decodeFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Source row 0 is (red, green); after the flip it must be the last row.
	last := img.pix[(img.height-1)*img.width*4:]
	if last[0] != 255 || last[1] != 0 {
		t.Errorf("bottom row should hold source top row (red first), got %v", last[:4])
	}
	first := img.pix[:8]
	if first[2] != 255 && first[0] != 255 {
		t.Errorf("top row should hold source bottom row, got %v", first)
	}
}
