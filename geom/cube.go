package geom

// UnitCube holds the corners of a unit cube centered on the origin.
var UnitCube = [8][3]float32{
	// Front face
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
	// Back face
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
}

// CubeEdges indexes UnitCube pairwise for wireframe drawing.
var CubeEdges = [24]uint32{
	0, 1, 1, 2, 2, 3, 3, 0, // Front face
	4, 5, 5, 6, 6, 7, 7, 4, // Back face
	0, 4, 1, 5, 2, 6, 3, 7, // Connecting lines
}

// CubeVertices flattens UnitCube for upload into a vertex buffer.
func CubeVertices() []float32 {
	out := make([]float32, 0, len(UnitCube)*3)
	for _, v := range UnitCube {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
