// Package scene drives the static desk scene: it loads the scene's
// textures, materials and meshes, then replays a declarative draw list
// every frame, configuring shader uniforms per entry.
package scene

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/geometry"
	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

// UniformSetter is the shader surface the scene drives. *shader.Program
// satisfies it.
type UniformSetter interface {
	SetMat4(name string, m math.Mat4)
	SetVec2(name string, v math.Vec2)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v [4]float32)
	SetFloat(name string, f float32)
	SetBool(name string, b bool)
	SetSampler(name string, unit int32)
}

// TextureStore is the texture registry surface the scene needs.
type TextureStore interface {
	Register(path, tag string) error
	BindAll()
	ResolveSlot(tag string) (int32, error)
	ReleaseAll()
}

// MaterialStore is the material registry surface the scene needs.
type MaterialStore interface {
	Define(tag string, diffuse, specular math.Vec3, shininess float32)
	Resolve(tag string) (material.Material, error)
}

// MeshDrawer is the mesh library surface the scene needs.
type MeshDrawer interface {
	Load(kinds ...geometry.Kind) error
	Draw(kind geometry.Kind) error
}

// Config assembles a scene. Zero-value fields fall back to the desk scene
// defaults; tests swap in doubles for the GL-backed stores.
type Config struct {
	// TextureDir is the directory texture files are loaded from.
	TextureDir string

	Textures  TextureStore
	Materials MaterialStore
	Meshes    MeshDrawer

	TextureFiles []TextureFile
	MaterialDefs []material.Material
	Lights       []lighting.PointLight
	Entries      []DrawEntry
}

// Scene owns the draw list and the stores backing it.
type Scene struct {
	textureDir string

	textures  TextureStore
	materials MaterialStore
	meshes    MeshDrawer

	textureFiles []TextureFile
	materialDefs []material.Material
	lights       []lighting.PointLight
	entries      []DrawEntry
}

// New builds a scene from cfg, defaulting every unset field.
func New(cfg Config) *Scene {
	s := &Scene{
		textureDir:   cfg.TextureDir,
		textures:     cfg.Textures,
		materials:    cfg.Materials,
		meshes:       cfg.Meshes,
		textureFiles: cfg.TextureFiles,
		materialDefs: cfg.MaterialDefs,
		lights:       cfg.Lights,
		entries:      cfg.Entries,
	}
	if s.textures == nil {
		s.textures = texture.NewRegistry()
	}
	if s.materials == nil {
		s.materials = material.NewRegistry()
	}
	if s.meshes == nil {
		s.meshes = mesh.NewLibrary()
	}
	if s.textureFiles == nil {
		s.textureFiles = DeskTextures()
	}
	if s.materialDefs == nil {
		s.materialDefs = DeskMaterials()
	}
	if s.lights == nil {
		s.lights = DeskLights()
	}
	if s.entries == nil {
		s.entries = DeskScript()
	}
	return s
}

// Setup prepares everything Render needs: materials, textures, lighting
// uniforms and GPU meshes. Failures are collected rather than aborting at
// the first one, so one bad asset reports alongside the rest. After a nil
// return, Render cannot fail a lookup.
func (s *Scene) Setup(setter UniformSetter) error {
	for _, m := range s.materialDefs {
		s.materials.Define(m.Tag, m.Diffuse, m.Specular, m.Shininess)
	}

	var errs []error
	for _, tf := range s.textureFiles {
		path := filepath.Join(s.textureDir, tf.File)
		if err := s.textures.Register(path, tf.Tag); err != nil {
			errs = append(errs, err)
		}
	}
	s.textures.BindAll()

	setter.SetBool("bUseLighting", true)
	lighting.ApplyAll(setter, s.lights)

	if err := s.meshes.Load(s.shapeKinds()...); err != nil {
		errs = append(errs, err)
	}

	if err := s.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("scene ready",
		zap.Int("entries", len(s.entries)),
		zap.Int("textures", len(s.textureFiles)),
		zap.Int("materials", len(s.materialDefs)),
		zap.Int("lights", len(s.lights)),
	)
	return nil
}

// Render replays the draw list. Per entry it uploads the model matrix,
// the appearance uniforms and the material block, then issues the draw.
// An entry whose texture tag failed to load falls back to its flat color
// so the rest of the scene still renders.
func (s *Scene) Render(setter UniformSetter) {
	for i := range s.entries {
		s.renderEntry(setter, &s.entries[i])
	}
}

func (s *Scene) renderEntry(setter UniformSetter, e *DrawEntry) {
	setter.SetMat4("model", e.Transform.Matrix())

	textured := false
	if e.Appearance.IsTextured() {
		if slot, err := s.textures.ResolveSlot(e.Appearance.TextureTag); err == nil {
			textured = true
			setter.SetBool("bUseTexture", true)
			setter.SetSampler("objectTexture", slot)
			setter.SetVec2("UVscale", e.Appearance.UVScale)
		}
	}
	if !textured {
		setter.SetBool("bUseTexture", false)
		setter.SetVec4("objectColor", e.Appearance.Color)
	}

	if e.Material != "" {
		if m, err := s.materials.Resolve(e.Material); err == nil {
			setter.SetVec3("material.diffuseColor", m.Diffuse)
			setter.SetVec3("material.specularColor", m.Specular)
			setter.SetFloat("material.shininess", m.Shininess)
		}
	}

	if err := s.meshes.Draw(e.Shape); err != nil {
		logger.Error("draw failed",
			zap.String("entry", e.Name),
			zap.Error(err),
		)
	}
}

// Release frees the scene's GPU textures. Meshes are owned by the mesh
// library passed in (or created here) and are destroyed by the caller
// that tears down the GL context.
func (s *Scene) Release() {
	s.textures.ReleaseAll()
}

// Entries exposes the draw list, mainly for inspection in tests.
func (s *Scene) Entries() []DrawEntry {
	return s.entries
}

// shapeKinds returns the deduplicated set of shapes the draw list uses,
// in first-use order.
func (s *Scene) shapeKinds() []geometry.Kind {
	seen := make(map[geometry.Kind]bool)
	var kinds []geometry.Kind
	for _, e := range s.entries {
		if !seen[e.Shape] {
			seen[e.Shape] = true
			kinds = append(kinds, e.Shape)
		}
	}
	return kinds
}

// validate cross-checks every entry against the stores so Render never
// hits an unresolvable tag.
func (s *Scene) validate() error {
	var errs []error
	for i, e := range s.entries {
		if e.Appearance.IsTextured() {
			if _, err := s.textures.ResolveSlot(e.Appearance.TextureTag); err != nil {
				errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.Name, err))
			}
		}
		if e.Material != "" {
			if _, err := s.materials.Resolve(e.Material); err != nil {
				errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}
