/*
 * featurize_test.go, part of ffp4mof.
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
 */

package featurize

import (
	"fmt"
	"math"
	"testing"

	mof "github.com/rmera/ffp4mof"
)

//simple cubic Cu, one site per cell. Its Voronoi cell is a cube of side a, and
//its bonded neighbors are the 6 octahedral first neighbors.
func simpleCubic(Te *testing.T, a float64) *mof.Structure {
	lat, err := mof.NewLattice([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := mof.NewStructure(lat, []*mof.Site{{Symbol: "Cu", Label: "Cu1", Occupancy: 1}})
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

//Cu-O at 2.0 A in a cubic cell, so both the bond network and the shells are
//known exactly.
func cubicCuO(Te *testing.T) *mof.Structure {
	lat, err := mof.NewLattice([]float64{4, 0, 0, 0, 4, 0, 0, 0, 4})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := mof.NewStructure(lat, []*mof.Site{
		{Symbol: "Cu", Label: "Cu1", Occupancy: 1},
		{Symbol: "O", Label: "O1", Occupancy: 1, Frac: [3]float64{0.5, 0, 0}},
	})
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func TestVoronoiCube(Te *testing.T) {
	a := 3.0
	S := simpleCubic(Te, a)
	facets, err := voronoiCell(S, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if len(facets) != 6 {
		Te.Fatalf("the cell of a simple cubic site is a cube: want 6 facets, got %d", len(facets))
	}
	var vol, omega float64
	for _, f := range facets {
		if f.nVerts != 4 {
			Te.Errorf("cube facets are squares: want 4 vertices, got %d", f.nVerts)
		}
		if math.Abs(f.area-a*a) > 1e-6 {
			Te.Errorf("facet area: got %8.5f, want %8.5f", f.area, a*a)
		}
		if math.Abs(f.faceDist-a/2) > 1e-8 {
			Te.Errorf("facet distance: got %8.5f, want %8.5f", f.faceDist, a/2)
		}
		vol += f.volume
		omega += f.solidAngle
	}
	if math.Abs(vol-a*a*a) > 1e-5 {
		Te.Errorf("cell volume: got %8.5f, want %8.5f", vol, a*a*a)
	}
	if math.Abs(omega-4*math.Pi) > 1e-5 {
		Te.Errorf("solid angles should close the sphere: got %8.5f, want %8.5f", omega, 4*math.Pi)
	}
	fmt.Println("Voronoi cube checked, volume", vol)
}

func TestCNFingerprintCube(Te *testing.T) {
	S := simpleCubic(Te, 3.0)
	facets, err := voronoiCell(S, 0)
	if err != nil {
		Te.Fatal(err)
	}
	r := cnFingerprint(facets)
	if len(r) != cnFeatures {
		Te.Fatalf("wrong fingerprint length: %d", len(r))
	}
	for n := 1; n <= cnFeatures; n++ {
		want := 0.0
		if n == 6 {
			want = 1.0
		}
		if math.Abs(r[n-1]-want) > 1e-6 {
			Te.Errorf("CN likelihood %d: got %8.5f, want %3.1f", n, r[n-1], want)
		}
	}
}

func TestAGNIFingerprint(Te *testing.T) {
	S := simpleCubic(Te, 3.0)
	etas := agniEtas()
	if len(etas) != agniFeatures {
		Te.Fatalf("wrong eta count: %d", len(etas))
	}
	if math.Abs(etas[0]-0.8) > 1e-10 || math.Abs(etas[len(etas)-1]-16.0) > 1e-10 {
		Te.Errorf("eta ladder endpoints: %v", etas)
	}
	r := agniFingerprint(S, 0, etas)
	for k, v := range r {
		if v <= 0 || math.IsNaN(v) {
			Te.Errorf("AGNI feature %d not positive: %8.5f", k, v)
		}
		//wider Gaussians weigh every neighbor more
		if k > 0 && r[k] <= r[k-1] {
			Te.Errorf("AGNI features should grow with eta: %v", r)
		}
	}
}

func TestSteinhardtCube(Te *testing.T) {
	S := simpleCubic(Te, 3.0)
	rcov, err := covalentRadii(S)
	if err != nil {
		Te.Fatal(err)
	}
	neighs := bondedImages(S, rcov, 0)
	if len(neighs) != 6 {
		Te.Fatalf("expected the 6 octahedral neighbors to be bonded, got %d", len(neighs))
	}
	//reference values for an ideal octahedral environment
	refs := map[int]float64{2: 0.0, 4: 0.76376, 6: 0.35355}
	for l, want := range refs {
		got := steinhardtQ(neighs, l)
		if math.Abs(got-want) > 1e-3 {
			Te.Errorf("q%d: got %8.5f, want %8.5f", l, got, want)
		}
	}
	if steinhardtQ(nil, 4) != 0 {
		Te.Error("a site with no bonded neighbors should get q_l = 0")
	}
}

func TestTetrahedrality(Te *testing.T) {
	//four ideal tetrahedral directions at unit distance
	dirs := [][3]float64{
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	}
	neighs := make([]*mof.Neighbor, len(dirs))
	for i, d := range dirs {
		n := math.Sqrt(3)
		neighs[i] = &mof.Neighbor{Index: 0, Disp: [3]float64{d[0] / n, d[1] / n, d[2] / n}, Dist: 1}
	}
	if q := tetrahedrality(neighs); math.Abs(q-1.0) > 1e-10 {
		Te.Errorf("perfect tetrahedron should give 1, got %8.5f", q)
	}
	if q := tetrahedrality(neighs[:1]); q != 0 {
		Te.Errorf("fewer than 2 neighbors should give 0, got %8.5f", q)
	}
}

func TestSiteDescriptors(Te *testing.T) {
	S := cubicCuO(Te)
	adj, dist, err := mof.AdjacencyMatrix(S)
	if err != nil {
		Te.Fatal(err)
	}
	ed, err := newElementData(S)
	if err != nil {
		Te.Fatal(err)
	}
	r := siteDescriptors(adj, dist, ed, 0)
	if len(r) != descrFeatures {
		Te.Fatalf("wrong descriptor length: %d", len(r))
	}
	ieCu, _ := mof.IonizationEnergy("Cu")
	enCu, _ := mof.Electronegativity("Cu")
	ieO, _ := mof.IonizationEnergy("O")
	if math.Abs(r[0]-ieCu) > 1e-10 || math.Abs(r[1]-enCu) > 1e-10 {
		Te.Errorf("own-site descriptors wrong: %v", r[:2])
	}
	//first shell of Cu is the single O at 2.0 A
	if r[2] != 1 || math.Abs(r[3]-ieO) > 1e-10 || math.Abs(r[5]-2.0) > 1e-8 {
		Te.Errorf("first-shell descriptors wrong: %v", r[2:6])
	}
	//the second shell (neighbors of O minus Cu and itself) is empty
	for k := 6; k < 10; k++ {
		if r[k] != 0 {
			Te.Errorf("second shell should be empty: %v", r[6:])
		}
	}
}

func TestFeatures(Te *testing.T) {
	S := cubicCuO(Te)
	F, err := Features(S)
	if err != nil {
		Te.Fatal(err)
	}
	rows, cols := F.Dims()
	if rows != S.Len() || cols != NFeatures {
		Te.Fatalf("feature matrix is %dx%d, want %dx%d", rows, cols, S.Len(), NFeatures)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.IsNaN(F.At(i, j)) || math.IsInf(F.At(i, j), 0) {
				Te.Errorf("feature (%d, %d) is not finite", i, j)
			}
		}
	}
	labels := Labels()
	if len(labels) != NFeatures {
		Te.Errorf("got %d labels for %d features", len(labels), NFeatures)
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			Te.Errorf("duplicated feature label %q", l)
		}
		seen[l] = true
	}
}
