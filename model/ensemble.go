/*
 * ensemble.go, part of ffp4mof.
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

package model

import (
	"strings"

	"github.com/dmitryikh/leaves"
	mof "github.com/rmera/ffp4mof"
	"gonum.org/v1/gonum/mat"
)

//EnsembleSize is the number of regressors trained per precursor.
const EnsembleSize = 5

//Regressor predicts one target value from one feature row. The concrete
//implementation is a leaves tree ensemble; the interface keeps the
//aggregation and everything downstream testable without model artifacts.
type Regressor interface {
	PredictRow(features []float64) float64
}

//treeRegressor wraps a leaves gradient-boosted-tree model.
type treeRegressor struct {
	e *leaves.Ensemble
}

func (t *treeRegressor) PredictRow(features []float64) float64 {
	return t.e.PredictSingle(features, 0) //0: use every tree
}

//ReadRegressor loads one tree-ensemble regressor: LightGBM text dumps for
//.txt files, XGBoost JSON dumps for .json files.
func ReadRegressor(filename string) (Regressor, error) {
	var e *leaves.Ensemble
	var err error
	switch {
	case strings.HasSuffix(filename, ".txt"):
		e, err = leaves.LGEnsembleFromFile(filename, false)
	case strings.HasSuffix(filename, ".json"):
		e, err = leaves.XGEnsembleFromFile(filename, false)
	default:
		return nil, mof.NewError("ReadRegressor", "%s: unknown model format (want .txt or .json)", filename)
	}
	if err != nil {
		return nil, mof.NewError("ReadRegressor", "%s: %s", filename, err.Error())
	}
	if e.NOutputGroups() != 1 {
		return nil, mof.NewError("ReadRegressor", "%s: model has %d output groups, want a plain regressor", filename, e.NOutputGroups())
	}
	return &treeRegressor{e: e}, nil
}

//Ensemble is the full predictor for one force-field precursor: a scaler
//followed by EnsembleSize regressors whose outputs are averaged.
type Ensemble struct {
	name   string
	scaler *Scaler
	models []Regressor
}

//NewEnsemble assembles an ensemble from its parts. Mostly useful for tests;
//production ensembles come from Read.
func NewEnsemble(name string, sc *Scaler, models []Regressor) (*Ensemble, error) {
	if sc == nil {
		return nil, mof.NewError("NewEnsemble", "%s: nil scaler", name)
	}
	if err := sc.check(); err != nil {
		return nil, mof.NewError("NewEnsemble", "%s: %s", name, err.Error())
	}
	if len(models) == 0 {
		return nil, mof.NewError("NewEnsemble", "%s: no models", name)
	}
	return &Ensemble{name: name, scaler: sc, models: models}, nil
}

//Name returns the precursor this ensemble predicts.
func (E *Ensemble) Name() string { return E.name }

//NFeatures returns the feature count the ensemble was trained on.
func (E *Ensemble) NFeatures() int { return E.scaler.NFeatures() }

//Predict scales the feature matrix and returns the ensemble-averaged
//prediction for each row.
func (E *Ensemble) Predict(F *mat.Dense) ([]float64, error) {
	T, err := E.scaler.Transform(F)
	if err != nil {
		return nil, mof.NewError("Ensemble.Predict", "%s: %s", E.name, err.Error())
	}
	rows, _ := T.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		row := T.RawRowView(i)
		acc := 0.0
		for _, m := range E.models {
			acc += m.PredictRow(row)
		}
		out[i] = acc / float64(len(E.models))
	}
	return out, nil
}
