// Package cluster groups spawn points into farm zones with DBSCAN.
package cluster

import "github.com/udisondev/questgen/internal/model"

// Params tunes the clustering.
type Params struct {
	Eps            float64 // neighbourhood radius
	MinSamples     int     // neighbourhood size (point included) that makes a core point
	Margin         float64 // added to the farthest member distance
	FallbackRadius float64 // radius of the single zone used when nothing clusters
}

// DefaultParams — 80 ярдов хорошо подходит под хотспоты.
var DefaultParams = Params{
	Eps:            80,
	MinSamples:     3,
	Margin:         15,
	FallbackRadius: 50,
}

const noise = -1

// Cluster groups points of one continent into farm zones using DefaultParams.
func Cluster(points []model.WorldPoint) []model.FarmZone {
	return ClusterWith(points, DefaultParams)
}

// ClusterWith groups points of one continent into farm zones.
//
// Points with at least MinSamples points (themselves included) within Eps are
// core points; core points within Eps of each other share a cluster, and
// non-core points within Eps of a core point join its cluster. Everything
// else is noise. Clusters are numbered in input order.
//
// When no cluster forms from non-empty input, a single zone covering all
// points with FallbackRadius is returned. Every zone takes the continent of
// the first point; callers must not mix continents.
func ClusterWith(points []model.WorldPoint, p Params) []model.FarmZone {
	if len(points) == 0 {
		return nil
	}

	labels := dbscan(points, p.Eps, p.MinSamples)

	var groups [][]model.WorldPoint
	for i, l := range labels {
		if l == noise {
			continue
		}
		for len(groups) <= l {
			groups = append(groups, nil)
		}
		groups[l] = append(groups[l], points[i])
	}

	continent := points[0].ContinentID
	zones := make([]model.FarmZone, 0, len(groups))
	for _, members := range groups {
		center := centroid(members)
		var farthest float64
		for _, m := range members {
			farthest = max(farthest, center.Distance2D(m))
		}
		zones = append(zones, model.FarmZone{
			ContinentID: continent,
			CenterX:     center.X,
			CenterY:     center.Y,
			CenterZ:     center.Z,
			Radius:      farthest + p.Margin,
		})
	}

	if len(zones) > 0 {
		return zones
	}

	center := centroid(points)
	return []model.FarmZone{{
		ContinentID: continent,
		CenterX:     center.X,
		CenterY:     center.Y,
		CenterZ:     center.Z,
		Radius:      p.FallbackRadius,
	}}
}

// dbscan returns a cluster label per point, or noise.
func dbscan(points []model.WorldPoint, eps float64, minSamples int) []int {
	g := newGrid(points, eps)

	neighbours := make([][]int, len(points))
	core := make([]bool, len(points))
	for i := range points {
		neighbours[i] = g.neighbours(i)
		core[i] = len(neighbours[i]) >= minSamples
	}

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = noise
	}

	next := 0
	for i := range points {
		if labels[i] != noise || !core[i] {
			continue
		}

		labels[i] = next
		stack := []int{i}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, n := range neighbours[cur] {
				if labels[n] != noise {
					continue
				}
				labels[n] = next
				if core[n] {
					stack = append(stack, n)
				}
			}
		}
		next++
	}

	return labels
}

func centroid(points []model.WorldPoint) model.WorldPoint {
	var sx, sy, sz float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
		sz += p.Z
	}
	n := float64(len(points))
	return model.WorldPoint{X: sx / n, Y: sy / n, Z: sz / n, ContinentID: points[0].ContinentID}
}
