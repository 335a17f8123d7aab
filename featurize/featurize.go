/*
 * featurize.go, part of ffp4mof.
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

//NFeatures is the width of the feature matrix.
const NFeatures = agniFeatures + cnFeatures + descrFeatures + orderFeatures + voroFeatures

//Features computes the feature matrix of the structure: one row per site,
//NFeatures columns, in the order documented in the package doc. The
//structure is not modified.
func Features(S *mof.Structure) (*mat.Dense, error) {
	if err := S.Corrupted(); err != nil {
		return nil, wrap(err, "Features")
	}
	etas := agniEtas()
	adj, dist, err := mof.AdjacencyMatrix(S)
	if err != nil {
		return nil, wrap(err, "Features")
	}
	ed, err := newElementData(S)
	if err != nil {
		return nil, wrap(err, "Features")
	}
	rcov, err := covalentRadii(S)
	if err != nil {
		return nil, wrap(err, "Features")
	}
	F := mat.NewDense(S.Len(), NFeatures, nil)
	row := make([]float64, 0, NFeatures)
	for i := 0; i < S.Len(); i++ {
		facets, err := voronoiCell(S, i)
		if err != nil {
			return nil, wrap(err, "Features")
		}
		row = row[:0]
		row = append(row, agniFingerprint(S, i, etas)...)
		row = append(row, cnFingerprint(facets)...)
		row = append(row, siteDescriptors(adj, dist, ed, i)...)
		row = append(row, orderParameters(bondedImages(S, rcov, i))...)
		row = append(row, voronoiFingerprint(facets)...)
		if len(row) != NFeatures {
			panic(mof.PanicMsg("featurize: feature blocks out of sync with NFeatures"))
		}
		F.SetRow(i, row)
	}
	return F, nil
}

//Labels returns the column names of the feature matrix, aligned with the
//output of Features.
func Labels() []string {
	labels := make([]string, 0, NFeatures)
	labels = append(labels, agniLabels(agniEtas())...)
	labels = append(labels, cnLabels()...)
	labels = append(labels, descriptorLabels()...)
	labels = append(labels, orderLabels()...)
	labels = append(labels, voronoiLabels()...)
	return labels
}

func wrap(err error, caller string) error {
	if e, ok := err.(mof.Error); ok {
		e.Decorate(caller)
		return e
	}
	return mof.NewError(caller, "%s", err.Error())
}
