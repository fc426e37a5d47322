package area

import (
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/pkg/math"
)

const grassDensityFactor = 0.25

// Grass configures grass scattered on the grass faces of room walkmeshes.
type Grass struct {
	Model         string
	Density       float32
	Probabilities []float32 // Per variant
}

// Fill rebuilds a scene graph from the area: lighting, room and object
// models, and grass clusters drawn from rng.
func (a *Area) Fill(g *scene.Graph, rng *rand.Rand) {
	g.Clear()
	g.SetAmbient(a.ambient)
	g.SetFog(a.fog)

	var clusters []scene.GrassCluster
	for _, room := range a.Rooms() {
		if m := room.Model(); m != nil {
			g.AddRoot(m)
		}
		if a.grass.Model == "" || room.Walkmesh() == nil {
			continue
		}
		for _, face := range room.Walkmesh().GrassFaces() {
			for range a.grassClusterCount(face) {
				clusters = append(clusters, scene.GrassCluster{
					Position: randomPointInTriangle(face, rng),
					Variant:  a.randomGrassVariant(rng),
				})
			}
		}
	}
	if a.grass.Model != "" {
		g.SetGrass(a.grass.Model, clusters)
	}

	for _, obj := range a.objects {
		if m := obj.Model(); m != nil {
			g.AddRoot(m)
		}
	}
}

func (a *Area) grassClusterCount(face walkmesh.Face) int {
	return int(gomath.Round(float64(grassDensityFactor * a.grass.Density * face.Area())))
}

func (a *Area) randomGrassVariant(rng *rand.Rand) int {
	probs := a.grass.Probabilities
	if len(probs) == 0 {
		return 0
	}
	var sum float32
	for _, p := range probs {
		sum += p
	}
	val := rng.Float32() * sum
	var upper float32
	for i := 0; i < len(probs)-1; i++ {
		upper += probs[i]
		if val < upper {
			return i
		}
	}
	return len(probs) - 1
}

func randomPointInTriangle(face walkmesh.Face, rng *rand.Rand) math.Vec3 {
	r1 := float32(gomath.Sqrt(rng.Float64()))
	r2 := rng.Float32()
	v := face.Vertices
	return v[0].Scale(1 - r1).
		Add(v[1].Scale(r1 * (1 - r2))).
		Add(v[2].Scale(r2 * r1))
}
