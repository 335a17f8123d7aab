/*
 * structure.go, part of ffp4mof.
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

package mof

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

/**Note: Several functions here panic instead of returning errors. Those are
 * "fundamental" functions: if something goes wrong in them, the caller is
 * way-most likely wrong and the program should crash. Most panics are related
 * to nil objects or out-of-bounds indexes.**/

//Lattice is a periodic cell, stored as a 3x3 matrix of row vectors in A.
type Lattice struct {
	m   *mat.Dense //row vectors a, b, c
	inv *mat.Dense //cached inverse, for cart->frac
}

//NewLattice builds a Lattice from a row-major slice of the 9 components of the
//cell vectors (a then b then c). It returns an error for singular cells.
func NewLattice(vectors []float64) (*Lattice, error) {
	if len(vectors) != 9 {
		return nil, NewError("NewLattice", "need 9 components for a cell, got %d", len(vectors))
	}
	L := new(Lattice)
	L.m = mat.NewDense(3, 3, vectors)
	L.inv = mat.NewDense(3, 3, nil)
	if err := L.inv.Inverse(L.m); err != nil {
		return nil, NewError("NewLattice", "singular cell matrix: %s", err.Error())
	}
	return L, nil
}

//LatticeFromParameters builds a Lattice from cell lengths (A) and angles
//(degrees), with the conventional orientation (a along x, b in the xy plane).
func LatticeFromParameters(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, NewError("LatticeFromParameters", "non-positive cell length (%4.2f, %4.2f, %4.2f)", a, b, c)
	}
	ca := math.Cos(alpha * Deg2Rad)
	cb := math.Cos(beta * Deg2Rad)
	cg := math.Cos(gamma * Deg2Rad)
	sg := math.Sin(gamma * Deg2Rad)
	if sg == 0 {
		return nil, NewError("LatticeFromParameters", "gamma angle of %4.2f degrees makes a degenerate cell", gamma)
	}
	cx := c * cb
	cy := c * (ca - cb*cg) / sg
	czsq := c*c - cx*cx - cy*cy
	if czsq <= 0 {
		return nil, NewError("LatticeFromParameters", "cell angles (%4.2f, %4.2f, %4.2f) do not close a cell", alpha, beta, gamma)
	}
	return NewLattice([]float64{
		a, 0, 0,
		b * cg, b * sg, 0,
		cx, cy, math.Sqrt(czsq),
	})
}

//Deg2Rad and Rad2Deg convert between degrees and radians.
const (
	Deg2Rad = math.Pi / 180.0
	Rad2Deg = 180.0 / math.Pi
)

//Matrix returns a copy of the 3x3 row-vector cell matrix.
func (L *Lattice) Matrix() *mat.Dense {
	if L == nil || L.m == nil {
		panic(ErrNilLattice)
	}
	r := mat.NewDense(3, 3, nil)
	r.Copy(L.m)
	return r
}

//Lengths returns the lengths of the three cell vectors, in A.
func (L *Lattice) Lengths() [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = math.Hypot(math.Hypot(L.m.At(i, 0), L.m.At(i, 1)), L.m.At(i, 2))
	}
	return r
}

//Angles returns the cell angles alpha, beta, gamma, in degrees.
func (L *Lattice) Angles() [3]float64 {
	l := L.Lengths()
	var r [3]float64
	pairs := [3][2]int{{1, 2}, {0, 2}, {0, 1}} //alpha is the b^c angle, etc.
	for k, p := range pairs {
		dot := 0.0
		for i := 0; i < 3; i++ {
			dot += L.m.At(p[0], i) * L.m.At(p[1], i)
		}
		r[k] = math.Acos(dot/(l[p[0]]*l[p[1]])) * Rad2Deg
	}
	return r
}

//Volume returns the cell volume in A^3.
func (L *Lattice) Volume() float64 {
	return math.Abs(mat.Det(L.m))
}

//Cart converts the fractional coordinates frac to cartesian, in A.
func (L *Lattice) Cart(frac [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = frac[0]*L.m.At(0, i) + frac[1]*L.m.At(1, i) + frac[2]*L.m.At(2, i)
	}
	return r
}

//Frac converts the cartesian coordinates cart (in A) to fractional.
func (L *Lattice) Frac(cart [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = cart[0]*L.inv.At(0, i) + cart[1]*L.inv.At(1, i) + cart[2]*L.inv.At(2, i)
	}
	return r
}

//MinimumImage returns the shortest displacement vector (cartesian, in A) from
//fractional coordinates f1 to any periodic image of f2, and its length.
//The search covers the first shell of neighboring cells after wrapping, which
//is exact for all but pathologically skewed cells.
func (L *Lattice) MinimumImage(f1, f2 [3]float64) ([3]float64, float64) {
	var df [3]float64
	for i := 0; i < 3; i++ {
		df[i] = wrapHalf(f2[i] - f1[i])
	}
	best := [3]float64{}
	bestd := math.MaxFloat64
	for i := -1.0; i <= 1; i++ {
		for j := -1.0; j <= 1; j++ {
			for k := -1.0; k <= 1; k++ {
				c := L.Cart([3]float64{df[0] + i, df[1] + j, df[2] + k})
				d := norm3(c)
				if d < bestd {
					bestd = d
					best = c
				}
			}
		}
	}
	return best, bestd
}

//wrapHalf wraps x to the interval [-0.5, 0.5).
func wrapHalf(x float64) float64 {
	x -= math.Round(x)
	if x >= 0.5 { //Round ties away from zero can leave exactly 0.5
		x -= 1
	}
	return x
}

//wrapFrac wraps x to the interval [0, 1).
func wrapFrac(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 || x < 0 { //guard against -1e-17 style leftovers
		x = 0
	}
	return x
}

func norm3(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

//Site is one crystallographic site: an element at a fractional position.
type Site struct {
	Symbol    string
	Label     string
	Occupancy float64
	Frac      [3]float64
}

//Copy returns a copy of the Site.
func (S *Site) Copy() *Site {
	if S == nil {
		panic("Attempted to copy a nil site")
	}
	n := new(Site)
	*n = *S
	return n
}

//Structure is a periodic structure: a lattice plus the sites in the unit cell,
//with optional named per-site properties (the force-field precursors, once
//predicted).
type Structure struct {
	Lattice *Lattice
	Sites   []*Site
	Name    string
	props   map[string][]float64
}

//NewStructure builds a Structure from a lattice and sites. It returns an
//error if either is missing, or if a site falls outside every table of the
//package (such structures could never be featurized).
func NewStructure(lat *Lattice, sites []*Site) (*Structure, error) {
	if lat == nil {
		return nil, NewError("NewStructure", "supplied a nil Lattice")
	}
	if len(sites) == 0 {
		return nil, NewError("NewStructure", "supplied an empty site list")
	}
	for i, s := range sites {
		if !KnownElement(s.Symbol) {
			return nil, NewError("NewStructure", "site %d (%s): element %s not covered by the atomic data tables", i, s.Label, s.Symbol)
		}
	}
	S := new(Structure)
	S.Lattice = lat
	S.Sites = sites
	return S, nil
}

//Len returns the number of sites in the structure.
func (S *Structure) Len() int {
	return len(S.Sites)
}

//Site returns the site with index i. Panics if out of range.
func (S *Structure) Site(i int) *Site {
	if i < 0 || i >= S.Len() {
		panic(ErrSiteOutOfRange)
	}
	return S.Sites[i]
}

//Copy returns a deep copy of the structure, including site properties.
func (S *Structure) Copy() *Structure {
	n := new(Structure)
	n.Name = S.Name
	lm := S.Lattice.Matrix()
	n.Lattice, _ = NewLattice(lm.RawMatrix().Data) //the matrix was invertible before
	n.Sites = make([]*Site, S.Len())
	for i, s := range S.Sites {
		n.Sites[i] = s.Copy()
	}
	if S.props != nil {
		n.props = make(map[string][]float64, len(S.props))
		for k, v := range S.props {
			nv := make([]float64, len(v))
			copy(nv, v)
			n.props[k] = nv
		}
	}
	return n
}

//Cart returns the cartesian coordinates of all sites as a Len()x3 matrix, in A.
func (S *Structure) Cart() *mat.Dense {
	if S == nil || S.Len() == 0 {
		panic(ErrNilStructure)
	}
	r := mat.NewDense(S.Len(), 3, nil)
	for i, s := range S.Sites {
		c := S.Lattice.Cart(s.Frac)
		r.SetRow(i, c[:])
	}
	return r
}

//DistanceMatrix returns the matrix of minimum-image distances between all
//pairs of sites, in A.
func (S *Structure) DistanceMatrix() *mat.SymDense {
	n := S.Len()
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, dist := S.Lattice.MinimumImage(S.Sites[i].Frac, S.Sites[j].Frac)
			d.SetSym(i, j, dist)
		}
	}
	return d
}

//Neighbor is a periodic image of a site, as seen from some central site: the
//index of the imaged site, the cartesian displacement from the central site to
//the image, and its length.
type Neighbor struct {
	Index int
	Disp  [3]float64
	Dist  float64
}

//Neighbors returns every periodic image of every site (self images included)
//within cutoff A of site i, sorted by distance. The central site itself (zero
//distance) is excluded.
func (S *Structure) Neighbors(i int, cutoff float64) []*Neighbor {
	if i < 0 || i >= S.Len() {
		panic(ErrSiteOutOfRange)
	}
	//Number of cells to scan along each direction: the spacing between
	//lattice planes is V over the area of the opposing face.
	vol := S.Lattice.Volume()
	var nmax [3]int
	for k := 0; k < 3; k++ {
		b := cross3(latRow(S.Lattice, (k+1)%3), latRow(S.Lattice, (k+2)%3))
		spacing := vol / norm3(b)
		nmax[k] = int(math.Ceil(cutoff/spacing)) + 1
	}
	center := S.Lattice.Cart(S.Sites[i].Frac)
	ret := make([]*Neighbor, 0, 32)
	for j, s := range S.Sites {
		for a := -nmax[0]; a <= nmax[0]; a++ {
			for b := -nmax[1]; b <= nmax[1]; b++ {
				for c := -nmax[2]; c <= nmax[2]; c++ {
					f := [3]float64{s.Frac[0] + float64(a), s.Frac[1] + float64(b), s.Frac[2] + float64(c)}
					p := S.Lattice.Cart(f)
					disp := [3]float64{p[0] - center[0], p[1] - center[1], p[2] - center[2]}
					d := norm3(disp)
					if d > cutoff {
						continue
					}
					if j == i && d < 1e-8 {
						continue //the central site itself
					}
					ret = append(ret, &Neighbor{Index: j, Disp: disp, Dist: d})
				}
			}
		}
	}
	sort.Slice(ret, func(a, b int) bool { return ret[a].Dist < ret[b].Dist })
	return ret
}

func latRow(L *Lattice, i int) [3]float64 {
	return [3]float64{L.m.At(i, 0), L.m.At(i, 1), L.m.At(i, 2)}
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//SetSiteProperty attaches the named per-site property to the structure. The
//slice must have one value per site.
func (S *Structure) SetSiteProperty(name string, values []float64) error {
	if len(values) != S.Len() {
		return NewError("SetSiteProperty", "property %s has %d values for %d sites", name, len(values), S.Len())
	}
	if S.props == nil {
		S.props = make(map[string][]float64)
	}
	v := make([]float64, len(values))
	copy(v, values)
	S.props[name] = v
	return nil
}

//SiteProperty returns the named per-site property, or an error if it was
//never set.
func (S *Structure) SiteProperty(name string) ([]float64, error) {
	v, ok := S.props[name]
	if !ok {
		return nil, NewError("SiteProperty", "structure has no property %s", name)
	}
	r := make([]float64, len(v))
	copy(r, v)
	return r, nil
}

//SitePropertyNames returns the names of the properties set on the structure,
//sorted.
func (S *Structure) SitePropertyNames() []string {
	r := make([]string, 0, len(S.props))
	for k := range S.props {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

//Composition returns a map from element symbol to the number of sites of that
//element in the cell.
func (S *Structure) Composition() map[string]int {
	r := make(map[string]int)
	for _, s := range S.Sites {
		r[s.Symbol]++
	}
	return r
}

//Formula returns the composition as a string, elements sorted alphabetically.
func (S *Structure) Formula() string {
	comp := S.Composition()
	keys := make([]string, 0, len(comp))
	for k := range comp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	f := ""
	for _, k := range keys {
		f += fmt.Sprintf("%s%d ", k, comp[k])
	}
	if len(f) > 0 {
		f = f[:len(f)-1]
	}
	return f
}

//Corrupted checks the structure for inconsistencies: sites outside the
//element tables, fractional coordinates far outside the cell, or site
//properties of the wrong length.
func (S *Structure) Corrupted() error {
	if S == nil || S.Lattice == nil || len(S.Sites) == 0 {
		return NewError("Corrupted", "nil or empty structure")
	}
	for i, s := range S.Sites {
		if !KnownElement(s.Symbol) {
			return NewError("Corrupted", "site %d: unknown element %s", i, s.Symbol)
		}
		for k := 0; k < 3; k++ {
			if math.IsNaN(s.Frac[k]) || math.Abs(s.Frac[k]) > 10 {
				return NewError("Corrupted", "site %d: suspect fractional coordinate %v", i, s.Frac)
			}
		}
	}
	for name, v := range S.props {
		if len(v) != S.Len() {
			return NewError("Corrupted", "property %s has %d values for %d sites", name, len(v), S.Len())
		}
	}
	return nil
}
