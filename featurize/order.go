/*
 * order.go, part of ffp4mof.
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

	mof "github.com/rmera/ffp4mof"
)

//Local order parameters over the bonded neighbors of each site: the
//Steinhardt bond-orientational parameters q_l for l = 2, 4, 6, 8, 10
//(DOI:10.1103/PhysRevB.28.784) and the Chau-Hardwick tetrahedrality
//(DOI:10.1080/00268979809483251). Sites without enough bonded neighbors
//contribute zeros.

var steinhardtLs = []int{2, 4, 6, 8, 10}

const orderFeatures = 6 //the q_l plus the tetrahedrality

//bondedImages returns the periodic neighbor images of site i that pass the
//covalent-radius bond criterion (the same one AdjacencyMatrix uses, but here
//each bonded image counts separately, as a site can bond several images of
//the same neighbor).
func bondedImages(S *mof.Structure, rcov []float64, i int) []*mof.Neighbor {
	neighs := S.Neighbors(i, 6.1)
	r := make([]*mof.Neighbor, 0, 8)
	for _, n := range neighs {
		if n.Dist < rcov[i]+rcov[n.Index]+0.5 {
			r = append(r, n)
		}
	}
	return r
}

func covalentRadii(S *mof.Structure) ([]float64, error) {
	r := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		var err error
		r[i], err = mof.CovalentRadius(S.Site(i).Symbol)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

//orderParameters computes the order-parameter block for one site from its
//bonded neighbor images.
func orderParameters(neighs []*mof.Neighbor) []float64 {
	r := make([]float64, 0, orderFeatures)
	for _, l := range steinhardtLs {
		r = append(r, steinhardtQ(neighs, l))
	}
	r = append(r, tetrahedrality(neighs))
	return r
}

//steinhardtQ is q_l = sqrt(4pi/(2l+1) * sum_m |<Y_lm>|^2), the average taken
//over the neighbor bond directions.
func steinhardtQ(neighs []*mof.Neighbor, l int) float64 {
	if len(neighs) == 0 {
		return 0
	}
	total := 0.0
	for m := 0; m <= l; m++ {
		var re, im float64
		norm := sphNorm(l, m)
		for _, n := range neighs {
			cost := n.Disp[2] / n.Dist
			phi := math.Atan2(n.Disp[1], n.Disp[0])
			p := norm * assocLegendre(l, m, cost)
			re += p * math.Cos(float64(m)*phi)
			im += p * math.Sin(float64(m)*phi)
		}
		re /= float64(len(neighs))
		im /= float64(len(neighs))
		contrib := re*re + im*im
		if m == 0 {
			total += contrib
		} else {
			total += 2 * contrib //the -m term has the same magnitude
		}
	}
	return math.Sqrt(4 * math.Pi / float64(2*l+1) * total)
}

//sphNorm is the normalization of the spherical harmonic Y_lm,
//sqrt((2l+1)/4pi * (l-m)!/(l+m)!).
func sphNorm(l, m int) float64 {
	f := 1.0
	for k := l - m + 1; k <= l+m; k++ {
		f *= float64(k)
	}
	return math.Sqrt(float64(2*l+1) / (4 * math.Pi) / f)
}

//assocLegendre evaluates the associated Legendre polynomial P_l^m(x) by the
//standard upward recurrence (Condon-Shortley phase included; it cancels in
//the q_l magnitudes anyway).
func assocLegendre(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll
}

//tetrahedrality is 1 - 3/8 sum_{j<k} (cos psi_jk + 1/3)^2 over the 4 nearest
//bonded neighbors; 1 for a perfect tetrahedron, 0 on average for random
//directions. Sites with fewer than 2 bonded neighbors get 0.
func tetrahedrality(neighs []*mof.Neighbor) float64 {
	if len(neighs) < 2 {
		return 0
	}
	n := len(neighs)
	if n > 4 {
		n = 4 //Neighbors are sorted by distance already
	}
	q := 1.0
	for j := 0; j < n-1; j++ {
		for k := j + 1; k < n; k++ {
			cospsi := dot3(neighs[j].Disp, neighs[k].Disp) / (neighs[j].Dist * neighs[k].Dist)
			d := cospsi + 1.0/3.0
			q -= 3.0 / 8.0 * d * d
		}
	}
	return q
}

func orderLabels() []string {
	labels := make([]string, 0, orderFeatures)
	for _, l := range steinhardtLs {
		labels = append(labels, fmt.Sprintf("q%d", l))
	}
	return append(labels, "tetrahedrality")
}
