/*
 * scaler.go, part of ffp4mof.
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
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	mof "github.com/rmera/ffp4mof"
	"gonum.org/v1/gonum/mat"
)

//Scaler standardizes a feature matrix column-wise, (x - mean)/scale, with the
//parameters obtained while training the ensembles. Its length doubles as the
//record of the feature-vector width the models expect.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

//NFeatures returns the feature count the scaler (and so the ensemble behind
//it) was fit on.
func (sc *Scaler) NFeatures() int {
	return len(sc.Mean)
}

//check verifies the internal consistency of the scaler.
func (sc *Scaler) check() error {
	if len(sc.Mean) == 0 || len(sc.Mean) != len(sc.Scale) {
		return mof.NewError("Scaler.check", "inconsistent scaler: %d means, %d scales", len(sc.Mean), len(sc.Scale))
	}
	for i, s := range sc.Scale {
		if s == 0 {
			return mof.NewError("Scaler.check", "zero scale for feature %d", i)
		}
	}
	return nil
}

//Transform returns the standardized copy of F. It refuses matrices whose
//width does not match the scaler: a mismatch means the features and the
//artifacts drifted apart, and predicting through it would be garbage.
func (sc *Scaler) Transform(F *mat.Dense) (*mat.Dense, error) {
	r, c := F.Dims()
	if c != sc.NFeatures() {
		return nil, mof.NewError("Scaler.Transform", "feature matrix has %d columns, scaler was fit on %d", c, sc.NFeatures())
	}
	T := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			T.Set(i, j, (F.At(i, j)-sc.Mean[j])/sc.Scale[j])
		}
	}
	return T, nil
}

//ReadScaler reads a scaler from a JSON file, transparently gunzipping files
//with a .gz suffix.
func ReadScaler(filename string) (*Scaler, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, mof.NewError("ReadScaler", "failed to open scaler: %s", err.Error())
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, mof.NewError("ReadScaler", "%s: not a gzip file: %s", filename, err.Error())
		}
		defer gz.Close()
		in = gz
	}
	sc := new(Scaler)
	if err := json.NewDecoder(in).Decode(sc); err != nil {
		return nil, mof.NewError("ReadScaler", "%s: malformed scaler: %s", filename, err.Error())
	}
	if err := sc.check(); err != nil {
		return nil, mof.NewError("ReadScaler", "%s: %s", filename, err.Error())
	}
	return sc, nil
}

//WriteScaler writes the scaler as (gzipped, if the name ends in .gz) JSON.
//It is used by the artifact-conversion tooling and the tests.
func WriteScaler(sc *Scaler, filename string) error {
	if err := sc.check(); err != nil {
		return mof.NewError("WriteScaler", "%s", err.Error())
	}
	f, err := os.Create(filename)
	if err != nil {
		return mof.NewError("WriteScaler", "failed to create file: %s", err.Error())
	}
	defer f.Close()
	var out io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(filename, ".gz") {
		gz = gzip.NewWriter(f)
		defer gz.Close()
		out = gz
	}
	if err := json.NewEncoder(out).Encode(sc); err != nil {
		return mof.NewError("WriteScaler", "encoding failed: %s", err.Error())
	}
	return nil
}
