package cluster_test

import "github.com/katalvlaran/spatialkit/cluster"

// samplePoints is a 20-box layout with known answers: joining the 10
// closest pairs leaves groups of sizes 5, 4, 2, 2 and singletons; the final
// Kruskal merge joins 216,146,977 and 117,168,530.
var samplePoints = []cluster.Point{
	{X: 162, Y: 817, Z: 812},
	{X: 57, Y: 618, Z: 57},
	{X: 906, Y: 360, Z: 560},
	{X: 592, Y: 479, Z: 940},
	{X: 352, Y: 342, Z: 300},
	{X: 466, Y: 668, Z: 158},
	{X: 542, Y: 29, Z: 236},
	{X: 431, Y: 825, Z: 988},
	{X: 739, Y: 650, Z: 466},
	{X: 52, Y: 470, Z: 668},
	{X: 216, Y: 146, Z: 977},
	{X: 819, Y: 987, Z: 18},
	{X: 117, Y: 168, Z: 530},
	{X: 805, Y: 96, Z: 715},
	{X: 346, Y: 949, Z: 466},
	{X: 970, Y: 615, Z: 88},
	{X: 941, Y: 993, Z: 340},
	{X: 862, Y: 61, Z: 35},
	{X: 984, Y: 92, Z: 344},
	{X: 425, Y: 690, Z: 689},
}
