package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/askessler/cadview/pkg/geometry"
	"github.com/askessler/cadview/pkg/stl"
)

func toRlVector(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// modelToMesh converts a model to a raylib mesh with per-vertex baked
// diffuse lighting, so the default material needs no shader setup.
func modelToMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, 0, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	for _, triangle := range model.Triangles {
		normal := triangle.Normal
		if normal.IsZero() {
			normal = triangle.CalculateNormal()
		}

		// Diffuse shading with a 30% ambient floor
		intensity := math.Max(0.3, -normal.Dot(lightDir))
		r := uint8(200 * intensity * 0.5)
		g := uint8(200 * intensity * 0.6)
		b := uint8(200 * intensity)

		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices = append(vertices,
				float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals,
				float32(normal.X), float32(normal.Y), float32(normal.Z))
			colors = append(colors, r, g, b, 255)
		}
	}

	mesh.Vertices = &vertices[0]
	mesh.Normals = &normals[0]
	mesh.Texcoords = &texcoords[0]
	mesh.Colors = &colors[0]

	rl.UploadMesh(&mesh, false)
	return mesh
}

// drawWireframe draws the triangle edges over the filled mesh
func (app *App) drawWireframe() {
	wireColor := rl.NewColor(100, 100, 100, 200)

	for _, triangle := range app.Model.model.Triangles {
		v1 := toRlVector(triangle.V1)
		v2 := toRlVector(triangle.V2)
		v3 := toRlVector(triangle.V3)

		rl.DrawLine3D(v1, v2, wireColor)
		rl.DrawLine3D(v2, v3, wireColor)
		rl.DrawLine3D(v3, v1, wireColor)
	}
}

// drawGrid draws the ground grid under the model
func (app *App) drawGrid() {
	bbox := app.Model.model.BoundingBox()
	center := bbox.Center()

	spacing := app.Model.size / 10.0
	if spacing <= 0 {
		spacing = 1
	}
	half := app.Model.size

	gridColor := rl.NewColor(50, 55, 65, 255)
	y := float32(bbox.Min.Y)

	for i := -10; i <= 10; i++ {
		offset := float64(i) * spacing
		rl.DrawLine3D(
			rl.Vector3{X: float32(center.X + offset), Y: y, Z: float32(center.Z - half)},
			rl.Vector3{X: float32(center.X + offset), Y: y, Z: float32(center.Z + half)},
			gridColor,
		)
		rl.DrawLine3D(
			rl.Vector3{X: float32(center.X - half), Y: y, Z: float32(center.Z + offset)},
			rl.Vector3{X: float32(center.X + half), Y: y, Z: float32(center.Z + offset)},
			gridColor,
		)
	}
}
