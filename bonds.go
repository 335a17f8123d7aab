/*
 * bonds.go, part of ffp4mof.
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
	"gonum.org/v1/gonum/mat"
)

//Bond detection constants. Two sites are bonded when their minimum-image
//distance is under the sum of their covalent radii plus bondtol, with
//maxBondSearch as a hard prefilter.
const (
	bondtol       = 0.5
	maxBondSearch = 6.1
)

//Bond joins two sites of a periodic structure.
type Bond struct {
	Index int
	At1   int //site indexes
	At2   int
	Dist  float64
}

//Cross, given one of the two site indexes in the bond, returns the other.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin site given is not present in the bond!") //got to be a programming error, so a panic is warranted.
}

//AdjacencyMatrix returns the periodic bond adjacency matrix of the structure
//(1 for bonded pairs, 0 otherwise) together with its minimum-image distance
//matrix. Pairs are bonded when closer than the sum of their covalent radii
//plus a 0.5 A tolerance; pairs beyond 6.1 A are never considered. The
//diagonal is zero.
func AdjacencyMatrix(S *Structure) (*mat.SymDense, *mat.SymDense, error) {
	n := S.Len()
	dist := S.DistanceMatrix()
	adj := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		cov1, err := CovalentRadius(S.Site(i).Symbol)
		if err != nil {
			return nil, nil, errDecorate(err, "AdjacencyMatrix")
		}
		for j := i + 1; j < n; j++ {
			d := dist.At(i, j)
			if d >= maxBondSearch {
				continue
			}
			cov2, err := CovalentRadius(S.Site(j).Symbol)
			if err != nil {
				return nil, nil, errDecorate(err, "AdjacencyMatrix")
			}
			if d < cov1+cov2+bondtol {
				adj.SetSym(i, j, 1)
			}
		}
	}
	return adj, dist, nil
}

//AssignBonds builds the bond list of the structure from the same distance
//criterium as AdjacencyMatrix.
func AssignBonds(S *Structure) ([]*Bond, error) {
	adj, dist, err := AdjacencyMatrix(S)
	if err != nil {
		return nil, errDecorate(err, "AssignBonds")
	}
	bonds := make([]*Bond, 0, S.Len()*2)
	var nextIndex int
	for i := 0; i < S.Len(); i++ {
		for j := i + 1; j < S.Len(); j++ {
			if adj.At(i, j) > 0 {
				bonds = append(bonds, &Bond{Index: nextIndex, At1: i, At2: j, Dist: dist.At(i, j)})
				nextIndex++
			}
		}
	}
	return bonds, nil
}

//BondedTo returns the indexes of the sites bonded to site i, given an
//adjacency matrix.
func BondedTo(adj *mat.SymDense, i int) []int {
	n := adj.SymmetricDim()
	r := make([]int, 0, 8)
	for j := 0; j < n; j++ {
		if j != i && adj.At(i, j) > 0 {
			r = append(r, j)
		}
	}
	return r
}
