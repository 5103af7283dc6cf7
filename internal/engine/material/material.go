// Package material holds the reflectance descriptors used by the scene's
// lighting model, keyed by a human-readable tag.
package material

import (
	"errors"
	"fmt"

	"github.com/Faultbox/deskscene/pkg/math"
)

// ErrNotFound means no material is defined under the tag.
var ErrNotFound = errors.New("material: tag not defined")

// Material describes how a surface reflects light. Color components are
// in [0,1]; Shininess is the specular exponent.
type Material struct {
	Tag       string
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// Registry holds defined materials in definition order.
//
// Duplicate tags are retained and lookups resolve to the first definition.
// This mirrors the behavior the scene was authored against; callers that
// redefine a tag get the original values back.
type Registry struct {
	entries []Material
	first   map[string]int
}

// NewRegistry creates an empty material registry.
func NewRegistry() *Registry {
	return &Registry{
		first: make(map[string]int),
	}
}

// Define appends a material. No duplicate-tag check is performed.
func (r *Registry) Define(tag string, diffuse, specular math.Vec3, shininess float32) {
	r.entries = append(r.entries, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
	if _, ok := r.first[tag]; !ok {
		r.first[tag] = len(r.entries) - 1
	}
}

// Resolve returns the first material defined under tag.
func (r *Registry) Resolve(tag string) (Material, error) {
	idx, ok := r.first[tag]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrNotFound, tag)
	}
	return r.entries[idx], nil
}

// Len returns the number of defined materials, duplicates included.
func (r *Registry) Len() int {
	return len(r.entries)
}
