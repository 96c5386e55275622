package mesh

// cubeSource returns a unit cube (8 vertices, 12 triangular faces, CCW
// outward winding) as a construction source, used throughout the package's
// tests as a known-good closed manifold.
func cubeSource() TriMeshSource {
	positions := [][3]float64{
		{0, 0, 0}, // 0
		{1, 0, 0}, // 1
		{1, 1, 0}, // 2
		{0, 1, 0}, // 3
		{0, 0, 1}, // 4
		{1, 0, 1}, // 5
		{1, 1, 1}, // 6
		{0, 1, 1}, // 7
	}

	indices := []uint32{
		// bottom (z=0), normal -z
		0, 2, 1,
		0, 3, 2,
		// top (z=1), normal +z
		4, 5, 6,
		4, 6, 7,
		// front (y=0), normal -y
		0, 1, 5,
		0, 5, 4,
		// back (y=1), normal +y
		3, 7, 6,
		3, 6, 2,
		// left (x=0), normal -x
		0, 4, 7,
		0, 7, 3,
		// right (x=1), normal +x
		1, 2, 6,
		1, 6, 5,
	}

	return TriMeshSource{Indices: indices, Positions: positions}
}

// squareSource returns two triangles sharing a diagonal, forming a unit
// square in the z=0 plane: v0=(0,0,0), v1=(1,0,0), v2=(1,1,0), v3=(0,1,0),
// split along the v0-v2 diagonal.
func squareSource() TriMeshSource {
	return TriMeshSource{
		Positions: [][3]float64{
			{0, 0, 0},
			{1, 0, 0},
			{1, 1, 0},
			{0, 1, 0},
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}
}

func mustBuild(source TriMeshSource) *Mesh {
	m, err := New(source)
	if err != nil {
		panic(err)
	}
	return m
}
