// Package texture loads scene texture images and tracks the texture unit
// each one is bound to, keyed by a human-readable tag.
package texture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/logger"
)

// MaxTextures is the registry capacity, bounded by the number of texture
// units the scene shader samples from simultaneously.
const MaxTextures = 16

// Registry error taxonomy.
var (
	// ErrDecode means the image file was missing or unreadable.
	ErrDecode = errors.New("texture: decode failed")
	// ErrUnsupportedFormat means the image was not 3- or 4-channel.
	ErrUnsupportedFormat = errors.New("texture: unsupported image format")
	// ErrCapacity means the registry already holds MaxTextures entries.
	ErrCapacity = errors.New("texture: registry full")
	// ErrNotFound means no texture is registered under the tag.
	ErrNotFound = errors.New("texture: tag not registered")
	// ErrDuplicate means the tag is already registered.
	ErrDuplicate = errors.New("texture: tag already registered")
)

// Entry is one registered texture. Slot equals the registration order index
// and doubles as the texture unit the handle is bound to.
type Entry struct {
	Tag    string
	Handle uint32
	Slot   int32
}

// backend abstracts the GPU side so the registry can be tested without a
// GL context.
type backend interface {
	// Upload creates a texture object from decoded pixels. opaque selects
	// the RGB internal format over RGBA.
	Upload(img *decoded) (uint32, error)
	// Bind binds a texture handle to a texture unit.
	Bind(slot int32, handle uint32)
	// Delete frees texture objects.
	Delete(handles []uint32)
}

// Registry maps tags to uploaded textures and their unit slots.
type Registry struct {
	backend backend
	entries []Entry
	byTag   map[string]int
}

// NewRegistry creates a registry backed by OpenGL.
func NewRegistry() *Registry {
	return newWithBackend(glBackend{})
}

func newWithBackend(b backend) *Registry {
	return &Registry{
		backend: b,
		byTag:   make(map[string]int),
	}
}

// Register decodes the image at path, uploads it as a 2D texture with
// repeat wrapping, linear filtering and mipmaps, and records it under tag.
// The decoded pixel buffer is released as soon as the upload returns.
func (r *Registry) Register(path, tag string) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("%w (capacity %d, registering %q)", ErrCapacity, MaxTextures, tag)
	}
	if _, ok := r.byTag[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, tag)
	}

	img, err := decodeFile(path)
	if err != nil {
		return err
	}

	handle, err := r.backend.Upload(img)
	if err != nil {
		return fmt.Errorf("uploading %q: %w", tag, err)
	}

	slot := int32(len(r.entries))
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle, Slot: slot})
	r.byTag[tag] = int(slot)

	logger.Debug("texture registered",
		zap.String("tag", tag),
		zap.String("path", path),
		zap.Int("width", img.width),
		zap.Int("height", img.height),
		zap.Int("channels", img.channels),
		zap.Int32("slot", slot),
	)
	return nil
}

// BindAll binds every registered texture to its assigned unit. Call once
// after registration and before any draw that samples by tag.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.backend.Bind(e.Slot, e.Handle)
	}
}

// ResolveSlot returns the texture unit index for tag.
func (r *Registry) ResolveSlot(tag string) (int32, error) {
	idx, ok := r.byTag[tag]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, tag)
	}
	return r.entries[idx].Slot, nil
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ReleaseAll frees every held texture object. Valid only at shutdown or
// before a full reset.
func (r *Registry) ReleaseAll() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.Handle
	}
	r.backend.Delete(handles)
	r.entries = nil
	r.byTag = make(map[string]int)
}
