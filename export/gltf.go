// Package export writes generated meshes to interchange formats (binary
// glTF and binary STL) so they can be inspected in external viewers.
package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ansipixels/orb/geometry"
)

// GLTFDocument builds a single-mesh glTF document from m.
func GLTFDocument(m *geometry.Mesh, name string) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}

	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, positions),
	}
	if len(m.Colors) == len(m.Vertices) && len(m.Colors) > 0 {
		colors := make([][4]float32, len(m.Colors))
		for i, c := range m.Colors {
			colors[i] = [4]float32{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}
		}
		attrs[gltf.COLOR_0] = modeler.WriteColor(doc, colors)
	}

	indices := modeler.WriteIndices(doc, m.Indices)
	meshIdx := len(doc.Meshes)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: attrs,
			Indices:    &indices,
		}},
	})
	nodeIdx := len(doc.Nodes)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: &meshIdx})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, nodeIdx)
	return doc
}

// GLB writes m as a binary glTF file.
func GLB(m *geometry.Mesh, name, path string) error {
	doc := GLTFDocument(m, name)
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
