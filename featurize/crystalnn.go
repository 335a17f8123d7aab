/*
 * crystalnn.go, part of ffp4mof.
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
	"sort"
)

//Coordination-likelihood fingerprint. Each Voronoi facet gets a weight
//proportional to its solid angle, normalized so the strongest neighbor has
//weight 1. With the weights sorted in decreasing order w_1 >= w_2 >= ...,
//the likelihood that the site is n-coordinated is w_n - w_{n+1}: all
//likelihoods are in [0,1] and sum to 1, and a site with n clearly dominant,
//equivalent neighbors gets all its likelihood at coordination n. One feature
//per coordination number from 1 to 24.

const cnFeatures = 24

func cnFingerprint(facets []*facet) []float64 {
	w := make([]float64, 0, len(facets))
	wmax := 0.0
	for _, f := range facets {
		w = append(w, f.solidAngle)
		if f.solidAngle > wmax {
			wmax = f.solidAngle
		}
	}
	r := make([]float64, cnFeatures)
	if wmax == 0 {
		return r
	}
	for i := range w {
		w[i] /= wmax
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(w)))
	for n := 1; n <= cnFeatures; n++ {
		if n > len(w) {
			break
		}
		next := 0.0
		if n < len(w) {
			next = w[n]
		}
		r[n-1] = w[n-1] - next
	}
	return r
}

func cnLabels() []string {
	labels := make([]string, cnFeatures)
	for i := range labels {
		labels[i] = fmt.Sprintf("CN_likelihood_%d", i+1)
	}
	return labels
}
