/*
 * model_test.go, part of ffp4mof.
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

package model

import (
	"archive/tar"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

//constReg predicts the same value for every row, standing in for the tree
//ensembles.
type constReg float64

func (c constReg) PredictRow(_ []float64) float64 { return float64(c) }

func TestScalerTransform(Te *testing.T) {
	sc := &Scaler{Mean: []float64{1, 2}, Scale: []float64{2, 4}}
	F := mat.NewDense(1, 2, []float64{3, 6})
	T, err := sc.Transform(F)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(T.At(0, 0)-1) > 1e-12 || math.Abs(T.At(0, 1)-1) > 1e-12 {
		Te.Errorf("standardization wrong: got (%5.3f, %5.3f), want (1, 1)", T.At(0, 0), T.At(0, 1))
	}
	//the original must not be touched
	if F.At(0, 0) != 3 {
		Te.Error("Transform modified its input")
	}
	if _, err := sc.Transform(mat.NewDense(1, 3, nil)); err == nil {
		Te.Error("a width mismatch should be rejected")
	}
}

func TestScalerCheck(Te *testing.T) {
	bad := []*Scaler{
		{},
		{Mean: []float64{1}, Scale: []float64{1, 2}},
		{Mean: []float64{1, 2}, Scale: []float64{1, 0}},
	}
	for i, sc := range bad {
		if _, err := NewEnsemble("x", sc, []Regressor{constReg(0)}); err == nil {
			Te.Errorf("bad scaler %d was accepted", i)
		}
	}
}

func TestScalerIO(Te *testing.T) {
	sc := &Scaler{Mean: []float64{0.5, -1.5, 3}, Scale: []float64{1, 2, 0.25}}
	name := filepath.Join(Te.TempDir(), "scaler.json.gz")
	if err := WriteScaler(sc, name); err != nil {
		Te.Fatal(err)
	}
	back, err := ReadScaler(name)
	if err != nil {
		Te.Fatal(err)
	}
	if back.NFeatures() != sc.NFeatures() {
		Te.Fatalf("feature count changed: %d vs %d", back.NFeatures(), sc.NFeatures())
	}
	for i := range sc.Mean {
		if back.Mean[i] != sc.Mean[i] || back.Scale[i] != sc.Scale[i] {
			Te.Errorf("scaler changed in the round trip at %d", i)
		}
	}
}

func TestEnsemblePredict(Te *testing.T) {
	sc := &Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}}
	E, err := NewEnsemble("partial_charge", sc, []Regressor{constReg(1), constReg(3)})
	if err != nil {
		Te.Fatal(err)
	}
	if E.Name() != "partial_charge" || E.NFeatures() != 2 {
		Te.Error("ensemble metadata wrong")
	}
	out, err := E.Predict(mat.NewDense(2, 2, nil))
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range out {
		if math.Abs(v-2.0) > 1e-12 {
			Te.Errorf("row %d: ensemble mean should be 2, got %8.5f", i, v)
		}
	}
	if _, err := E.Predict(mat.NewDense(1, 5, nil)); err == nil {
		Te.Error("a feature-width mismatch should not predict")
	}
}

//writeArchive packs the given name->content files into a tar.gz.
func writeArchive(Te *testing.T, archive string, files map[string]string) {
	f, err := os.Create(archive)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	defer gz.Close()
	tw := tar.NewWriter(gz)
	defer tw.Close()
	for name, content := range files {
		hdr := &tar.Header{Name: name, Mode: 0644, Size: int64(len(content)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			Te.Fatal(err)
		}
		if _, err := io.WriteString(tw, content); err != nil {
			Te.Fatal(err)
		}
	}
}

func TestInstallAndAvailable(Te *testing.T) {
	dir := Te.TempDir()
	//a valid scaler so Available finds the precursor
	scaler := filepath.Join(dir, "scaler.json.gz")
	if err := WriteScaler(&Scaler{Mean: []float64{0}, Scale: []float64{1}}, scaler); err != nil {
		Te.Fatal(err)
	}
	raw, err := os.ReadFile(scaler)
	if err != nil {
		Te.Fatal(err)
	}
	archive := filepath.Join(dir, "ffp_tools.tar.gz")
	writeArchive(Te, archive, map[string]string{
		"scalers/partial_charge/scaler.json.gz":  string(raw),
		"models/partial_charge/best_model_0.txt": "placeholder\n",
	})
	root := filepath.Join(dir, "data")
	if err := Install(archive, root); err != nil {
		Te.Fatal(err)
	}
	names := Available(root)
	if len(names) != 1 || names[0] != "partial_charge" {
		Te.Errorf("Available after Install: got %v, want [partial_charge]", names)
	}
	if _, err := os.Stat(filepath.Join(root, "models", "partial_charge", "best_model_0.txt")); err != nil {
		Te.Error("model file missing after Install")
	}
}

func TestInstallRejectsEscapes(Te *testing.T) {
	dir := Te.TempDir()
	archive := filepath.Join(dir, "evil.tar.gz")
	writeArchive(Te, archive, map[string]string{"../evil.txt": "nope"})
	if err := Install(archive, filepath.Join(dir, "data")); err == nil {
		Te.Error("an archive entry escaping the data root was accepted")
	}
}

func TestDefaultDataRoot(Te *testing.T) {
	Te.Setenv(DataRootEnv, "/somewhere/ffp")
	root, err := DefaultDataRoot()
	if err != nil {
		Te.Fatal(err)
	}
	if root != "/somewhere/ffp" {
		Te.Errorf("environment override ignored: got %q", root)
	}
}
