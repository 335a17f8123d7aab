/*
 * agni.go, part of ffp4mof.
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

//AGNI radial fingerprints (DOI:10.1021/acs.jpcc.6b10908, non-directional
//variant): a ladder of Gaussian-weighted neighbor counts under a cosine
//cutoff,
//
//	V_eta = sum_j exp(-(r_ij/eta)^2) * 0.5*(cos(pi r_ij/Rc)+1)
//
//with 8 widths eta spaced logarithmically between 0.8 and 16 A and Rc = 8 A.

const (
	agniCutoff   = 8.0
	agniFeatures = 8
	agniEtaMin   = 0.8
	agniEtaMax   = 16.0
)

func agniEtas() []float64 {
	etas := make([]float64, agniFeatures)
	lmin := math.Log10(agniEtaMin)
	lmax := math.Log10(agniEtaMax)
	for i := range etas {
		etas[i] = math.Pow(10, lmin+(lmax-lmin)*float64(i)/float64(agniFeatures-1))
	}
	return etas
}

//agniFingerprint computes the 8 AGNI features for site i.
func agniFingerprint(S *mof.Structure, i int, etas []float64) []float64 {
	neighs := S.Neighbors(i, agniCutoff)
	r := make([]float64, len(etas))
	for _, n := range neighs {
		fc := 0.5 * (math.Cos(math.Pi*n.Dist/agniCutoff) + 1)
		for k, eta := range etas {
			x := n.Dist / eta
			r[k] += math.Exp(-x*x) * fc
		}
	}
	return r
}

func agniLabels(etas []float64) []string {
	labels := make([]string, len(etas))
	for i, eta := range etas {
		labels[i] = fmt.Sprintf("AGNI_eta_%6.4f", eta)
	}
	return labels
}
