/*
 * descriptors.go, part of ffp4mof.
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
	mof "github.com/rmera/ffp4mof"
	"gonum.org/v1/gonum/mat"
)

//Two-shell site descriptors. For each site: its own first ionization energy
//and electronegativity; then, for the shell of bonded neighbors and for the
//shell of their neighbors (minus the first shell and the site itself), the
//shell size and the shell means of ionization energy, electronegativity and
//distance to the site. 10 features. Empty shells contribute zeros.

const descrFeatures = 10

//elementData caches per-site ionization energies and electronegativities.
type elementData struct {
	ion []float64
	en  []float64
}

func newElementData(S *mof.Structure) (*elementData, error) {
	d := new(elementData)
	d.ion = make([]float64, S.Len())
	d.en = make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		var err error
		sym := S.Site(i).Symbol
		d.ion[i], err = mof.IonizationEnergy(sym)
		if err != nil {
			return nil, err
		}
		d.en[i], err = mof.Electronegativity(sym)
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func siteDescriptors(adj *mat.SymDense, dist *mat.SymDense, ed *elementData, i int) []float64 {
	r := make([]float64, 0, descrFeatures)
	r = append(r, ed.ion[i], ed.en[i])

	first := neighborsOf(adj, i)
	r = append(r, shellStats(first, dist, ed, i)...)

	inFirst := make(map[int]bool, len(first))
	for _, n := range first {
		inFirst[n] = true
	}
	secondSet := make(map[int]bool)
	for _, n := range first {
		for _, m := range neighborsOf(adj, n) {
			if m != i && !inFirst[m] {
				secondSet[m] = true
			}
		}
	}
	second := make([]int, 0, len(secondSet))
	for m := range secondSet {
		second = append(second, m)
	}
	r = append(r, shellStats(second, dist, ed, i)...)
	return r
}

func neighborsOf(adj *mat.SymDense, i int) []int {
	n := adj.SymmetricDim()
	r := make([]int, 0, 8)
	for j := 0; j < n; j++ {
		if j != i && adj.At(i, j) > 0 {
			r = append(r, j)
		}
	}
	return r
}

//shellStats returns the size of the shell and its mean ionization energy,
//electronegativity and distance to site i; zeros for an empty shell.
func shellStats(shell []int, dist *mat.SymDense, ed *elementData, i int) []float64 {
	if len(shell) == 0 {
		return []float64{0, 0, 0, 0}
	}
	var mion, men, mdist float64
	for _, n := range shell {
		mion += ed.ion[n]
		men += ed.en[n]
		mdist += dist.At(i, n)
	}
	c := float64(len(shell))
	return []float64{c, mion / c, men / c, mdist / c}
}

func descriptorLabels() []string {
	labels := []string{"IE", "EN"}
	for _, shell := range []string{"first", "second"} {
		labels = append(labels,
			shell+"_shell_size",
			shell+"_shell_IE_mean",
			shell+"_shell_EN_mean",
			shell+"_shell_dist_mean")
	}
	return labels
}
