/*
 * voronoi.go, part of ffp4mof.
 *
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * ffp4mof is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package featurize

import (
	"fmt"
	"math"
	"sort"

	mof "github.com/rmera/ffp4mof"
	"gonum.org/v1/gonum/stat"
)

//The Voronoi cell of a site is the intersection of the half-spaces bounded by
//the planes bisecting the site and its periodic neighbors. Vertices are the
//triple-plane intersections that survive every other half-space; a plane with
//at least 3 surviving vertices contributes a facet. Unlike the molecular
//(open-boundary) case, periodic cells are always bounded, so the enumeration
//needs no closing box as long as the cutoff exceeds twice the largest
//neighbor gap.

const (
	voroCutoff  = 6.5  //A, as in the original fingerprints
	voroEps     = 1e-5 //A, tolerance for a vertex to lie on a plane
	voroMaxVert = 10   //facets with more vertices are ignored by the stats
)

//A facet of a Voronoi cell: the bisected neighbor, the polygon size, and the
//derived quantities the fingerprints need. FaceDist is the distance from the
//central site to the facet (half the neighbor distance).
type facet struct {
	neighbor   *mof.Neighbor
	nVerts     int
	area       float64
	volume     float64 //of the sub-polyhedron facet + central site
	faceDist   float64
	solidAngle float64
}

//a bisecting plane in Hessian form, relative to the central site:
//normal*x = dist, with normal pointing at the neighbor.
type plane struct {
	normal   [3]float64
	dist     float64
	neighbor *mof.Neighbor
}

//voronoiCell computes the facets of the Voronoi cell around site i.
func voronoiCell(S *mof.Structure, i int) ([]*facet, error) {
	neighs := S.Neighbors(i, voroCutoff)
	if len(neighs) < 4 {
		return nil, mof.NewError("voronoiCell", "site %d has only %d neighbors within %3.1f A; cell too sparse for a Voronoi cell", i, len(neighs), voroCutoff)
	}
	planes := make([]*plane, len(neighs))
	for k, n := range neighs {
		p := new(plane)
		for c := 0; c < 3; c++ {
			p.normal[c] = n.Disp[c] / n.Dist
		}
		p.dist = n.Dist / 2
		p.neighbor = n
		planes[k] = p
	}
	verts := enumerateVertices(planes)
	if len(verts) < 4 {
		return nil, mof.NewError("voronoiCell", "site %d: degenerate Voronoi cell (%d vertices)", i, len(verts))
	}
	facets := make([]*facet, 0, 16)
	for _, p := range planes {
		own := make([][3]float64, 0, 8)
		for _, v := range verts {
			if math.Abs(dot3(p.normal, v)-p.dist) < voroEps {
				own = append(own, v)
			}
		}
		if len(own) < 3 {
			continue //not an actual facet of the cell
		}
		ordered := orderFacet(p, own)
		f := new(facet)
		f.neighbor = p.neighbor
		f.nVerts = len(ordered)
		f.faceDist = p.dist
		f.area, f.solidAngle = facetAreaAndSolidAngle(ordered)
		f.volume = f.area * f.faceDist / 3 //pyramid with the site as apex
		facets = append(facets, f)
	}
	return facets, nil
}

//enumerateVertices intersects every triple of planes and keeps the points
//inside all half-spaces, deduplicated.
func enumerateVertices(planes []*plane) [][3]float64 {
	verts := make([][3]float64, 0, 32)
	n := len(planes)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				v, ok := intersect3(planes[a], planes[b], planes[c])
				if !ok {
					continue
				}
				inside := true
				for _, p := range planes {
					if dot3(p.normal, v) > p.dist+voroEps {
						inside = false
						break
					}
				}
				if !inside {
					continue
				}
				dup := false
				for _, w := range verts {
					if dist3(v, w) < voroEps {
						dup = true
						break
					}
				}
				if !dup {
					verts = append(verts, v)
				}
			}
		}
	}
	return verts
}

//intersect3 solves the 3-plane system by Cramer's rule. Returns false for
//(near) parallel triples.
func intersect3(p1, p2, p3 *plane) ([3]float64, bool) {
	var zero [3]float64
	a := p1.normal
	b := p2.normal
	c := p3.normal
	det := a[0]*(b[1]*c[2]-b[2]*c[1]) - a[1]*(b[0]*c[2]-b[2]*c[0]) + a[2]*(b[0]*c[1]-b[1]*c[0])
	if math.Abs(det) < 1e-10 {
		return zero, false
	}
	d := [3]float64{p1.dist, p2.dist, p3.dist}
	var v [3]float64
	for k := 0; k < 3; k++ {
		m := [3][3]float64{a, b, c}
		for r := 0; r < 3; r++ {
			m[r][k] = d[r]
		}
		v[k] = (m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])) / det
	}
	return v, true
}

//orderFacet sorts the facet vertices by angle around the facet center, in the
//plane's own basis, so the polygon can be triangulated as a fan.
func orderFacet(p *plane, verts [][3]float64) [][3]float64 {
	var center [3]float64
	for _, v := range verts {
		for c := 0; c < 3; c++ {
			center[c] += v[c] / float64(len(verts))
		}
	}
	//build an orthonormal basis {u, w} for the plane
	u := [3]float64{1, 0, 0}
	if math.Abs(p.normal[0]) > 0.9 {
		u = [3]float64{0, 1, 0}
	}
	u = cross3(p.normal, u)
	un := norm3v(u)
	for c := 0; c < 3; c++ {
		u[c] /= un
	}
	w := cross3(p.normal, u)
	type av struct {
		angle float64
		v     [3]float64
	}
	avs := make([]av, len(verts))
	for k, v := range verts {
		d := [3]float64{v[0] - center[0], v[1] - center[1], v[2] - center[2]}
		avs[k] = av{math.Atan2(dot3(d, w), dot3(d, u)), v}
	}
	sort.Slice(avs, func(a, b int) bool { return avs[a].angle < avs[b].angle })
	r := make([][3]float64, len(verts))
	for k := range avs {
		r[k] = avs[k].v
	}
	return r
}

//facetAreaAndSolidAngle triangulates the ordered polygon as a fan and sums
//Heron areas, plus the solid angle subtended at the central site (origin),
//using the Van Oosterom-Strackee formula per triangle.
func facetAreaAndSolidAngle(verts [][3]float64) (float64, float64) {
	var area, omega float64
	for k := 1; k < len(verts)-1; k++ {
		area += heron(verts[0], verts[k], verts[k+1])
		omega += triangleSolidAngle(verts[0], verts[k], verts[k+1])
	}
	return area, omega
}

func heron(p1, p2, p3 [3]float64) float64 {
	a := dist3(p1, p2)
	b := dist3(p2, p3)
	c := dist3(p3, p1)
	s := (a + b + c) / 2
	arg := s * (s - a) * (s - b) * (s - c)
	if arg <= 0 { //degenerate triangle, numerically
		return 0
	}
	return math.Sqrt(arg)
}

func triangleSolidAngle(r1, r2, r3 [3]float64) float64 {
	l1 := norm3v(r1)
	l2 := norm3v(r2)
	l3 := norm3v(r3)
	num := math.Abs(dot3(r1, cross3(r2, r3)))
	den := l1*l2*l3 + dot3(r1, r2)*l3 + dot3(r1, r3)*l2 + dot3(r2, r3)*l1
	return 2 * math.Abs(math.Atan2(num, den))
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm3v(a [3]float64) float64 {
	return math.Sqrt(dot3(a, a))
}

func dist3(a, b [3]float64) float64 {
	return norm3v([3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]})
}

//The Voronoi fingerprint block: facet edge-count histogram for 3..10 edges,
//the corresponding symmetry (normalized) indices, volume and area sums, and
//mean/stddev/min/max statistics of the sub-polyhedron volumes, facet areas
//and neighbor distances (twice the facet distance). 30 features.
const voroFeatures = 30

func voronoiFingerprint(facets []*facet) []float64 {
	idx := make([]float64, 8) //n_verts 3..10
	vols := make([]float64, 0, len(facets))
	areas := make([]float64, 0, len(facets))
	dists := make([]float64, 0, len(facets))
	for _, f := range facets {
		if f.nVerts > voroMaxVert {
			continue
		}
		idx[f.nVerts-3]++
		vols = append(vols, f.volume)
		areas = append(areas, f.area)
		dists = append(dists, f.faceDist*2)
	}
	r := make([]float64, 0, voroFeatures)
	r = append(r, idx...)
	tot := 0.0
	for _, v := range idx {
		tot += v
	}
	for _, v := range idx {
		if tot > 0 {
			r = append(r, v/tot)
		} else {
			r = append(r, 0)
		}
	}
	r = append(r, sum(vols), sum(areas))
	r = append(r, fourStats(vols)...)
	r = append(r, fourStats(areas)...)
	r = append(r, fourStats(dists)...)
	return r
}

func voronoiLabels() []string {
	labels := make([]string, 0, voroFeatures)
	for i := 3; i <= 10; i++ {
		labels = append(labels, fmt.Sprintf("Voro_index_%d", i))
	}
	for i := 3; i <= 10; i++ {
		labels = append(labels, fmt.Sprintf("Symmetry_index_%d", i))
	}
	labels = append(labels, "Voro_vol_sum", "Voro_area_sum")
	for _, which := range []string{"vol", "area", "dist"} {
		for _, st := range []string{"mean", "std_dev", "minimum", "maximum"} {
			labels = append(labels, "Voro_"+which+"_"+st)
		}
	}
	return labels
}

func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

//mean, population standard deviation, minimum and maximum, with zeros for
//empty input.
func fourStats(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{0, 0, 0, 0}
	}
	mean := stat.Mean(x, nil)
	sd := stat.PopStdDev(x, nil)
	mn := x[0]
	mx := x[0]
	for _, v := range x {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return []float64{mean, sd, mn, mx}
}
