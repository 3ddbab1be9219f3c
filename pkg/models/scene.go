// Package models loads glTF scene hierarchies into sbmath transforms.
package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

var (
	ErrNoScene       = errors.New("document has no scene")
	ErrNodeIndex     = errors.New("node index out of range")
	ErrNodeCycle     = errors.New("node reachable more than once")
	ErrMeshIndex     = errors.New("mesh index out of range")
	ErrAccessorIndex = errors.New("accessor index out of range")
)

// Node is one glTF node with its transforms resolved.
type Node struct {
	Index  int // index in the glTF document
	Name   string
	Parent int // index into Scene.Nodes, -1 for roots
	Depth  int

	Local sbmath.Mat4
	World sbmath.Mat4

	// Local transform components. Rotation follows sbmath conventions, so
	// Rotation.ToMat4() reproduces the node's rotation.
	Translation sbmath.Vec3
	Rotation    sbmath.Quat
	Scale       sbmath.Vec3

	// Angles is the orientation of the world transform.
	Angles sbmath.Angles

	// Bounds of the node's mesh in world space. Empty without a mesh.
	Bounds Bounds
}

// Scene is the flattened node hierarchy of one glTF scene, parents before
// children.
type Scene struct {
	Name   string
	Nodes  []Node
	Bounds Bounds
}

// Roots returns the indices of the top-level nodes.
func (s *Scene) Roots() []int {
	var roots []int
	for i, n := range s.Nodes {
		if n.Parent < 0 {
			roots = append(roots, i)
		}
	}
	return roots
}

// Children returns the indices of the direct children of Nodes[i].
func (s *Scene) Children(i int) []int {
	var children []int
	for j, n := range s.Nodes {
		if n.Parent == i {
			children = append(children, j)
		}
	}
	return children
}

// LoadScene opens a .gltf or .glb file and resolves its default scene.
func LoadScene(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	scene, err := SceneFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	if scene.Name == "" {
		scene.Name = filepath.Base(path)
	}
	return scene, nil
}

// SceneFromDocument resolves the document's default scene, or its first
// scene when none is marked default.
func SceneFromDocument(doc *gltf.Document) (*Scene, error) {
	if doc == nil || len(doc.Scenes) == 0 {
		return nil, ErrNoScene
	}

	idx := 0
	if doc.Scene != nil {
		idx = *doc.Scene
	}
	if idx < 0 || idx >= len(doc.Scenes) {
		return nil, fmt.Errorf("scene %d: %w", idx, ErrNoScene)
	}

	b := &sceneBuilder{
		doc:     doc,
		scene:   &Scene{Name: doc.Scenes[idx].Name},
		visited: make(map[int]bool),
	}
	for _, root := range doc.Scenes[idx].Nodes {
		if err := b.visit(root, -1, 0, sbmath.Mat4Identity); err != nil {
			return nil, err
		}
	}

	return b.scene, nil
}

type sceneBuilder struct {
	doc     *gltf.Document
	scene   *Scene
	visited map[int]bool
}

func (b *sceneBuilder) visit(idx, parent, depth int, parentWorld sbmath.Mat4) error {
	if idx < 0 || idx >= len(b.doc.Nodes) {
		return fmt.Errorf("node %d: %w", idx, ErrNodeIndex)
	}
	if b.visited[idx] {
		return fmt.Errorf("node %d: %w", idx, ErrNodeCycle)
	}
	b.visited[idx] = true

	gn := b.doc.Nodes[idx]
	local, t, r, s := nodeTransform(gn)
	world := parentWorld.Mul(local)

	node := Node{
		Index:       idx,
		Name:        gn.Name,
		Parent:      parent,
		Depth:       depth,
		Local:       local,
		World:       world,
		Translation: t,
		Rotation:    r,
		Scale:       s,
		Angles:      orientation(world),
	}

	if gn.Mesh != nil {
		bounds, err := meshBounds(b.doc, *gn.Mesh)
		if err != nil {
			return fmt.Errorf("node %q: %w", gn.Name, err)
		}
		node.Bounds = bounds.Transform(world)
		b.scene.Bounds = b.scene.Bounds.Union(node.Bounds)
	}

	self := len(b.scene.Nodes)
	b.scene.Nodes = append(b.scene.Nodes, node)

	for _, child := range gn.Children {
		if err := b.visit(child, self, depth+1, world); err != nil {
			return err
		}
	}
	return nil
}

// meshBounds returns the local bounds of every POSITION attribute of a
// mesh. Accessor min/max are used when present.
func meshBounds(doc *gltf.Document, meshIdx int) (Bounds, error) {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
		return Bounds{}, fmt.Errorf("mesh %d: %w", meshIdx, ErrMeshIndex)
	}

	var bounds Bounds
	for _, prim := range doc.Meshes[meshIdx].Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return Bounds{}, fmt.Errorf("accessor %d: %w", posIdx, ErrAccessorIndex)
		}

		accessor := doc.Accessors[posIdx]
		if len(accessor.Min) == 3 && len(accessor.Max) == 3 {
			bounds = bounds.Union(NewBounds(
				sbmath.V3(float32(accessor.Min[0]), float32(accessor.Min[1]), float32(accessor.Min[2])),
				sbmath.V3(float32(accessor.Max[0]), float32(accessor.Max[1]), float32(accessor.Max[2])),
			))
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return Bounds{}, fmt.Errorf("read positions: %w", err)
		}
		bounds = bounds.Union(BoundsOf(positions))
	}
	return bounds, nil
}
