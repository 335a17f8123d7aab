/*
 * predict_test.go, part of ffp4mof.
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

package predict

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	mof "github.com/rmera/ffp4mof"
	"github.com/rmera/ffp4mof/featurize"
	"github.com/rmera/ffp4mof/model"
)

//siteReg makes each site distinguishable: it predicts base plus the first
//raw (scaled) feature of the row.
type siteReg float64

func (s siteReg) PredictRow(features []float64) float64 {
	return float64(s) + features[0]
}

type constReg float64

func (c constReg) PredictRow(_ []float64) float64 { return float64(c) }

//identityScaler leaves the features alone, at the width the featurizer
//produces.
func identityScaler() *model.Scaler {
	sc := &model.Scaler{
		Mean:  make([]float64, featurize.NFeatures),
		Scale: make([]float64, featurize.NFeatures),
	}
	for i := range sc.Scale {
		sc.Scale[i] = 1
	}
	return sc
}

//stubSource hands out one synthetic ensemble per precursor.
func stubSource(Te *testing.T) func(name string) (*model.Ensemble, error) {
	return func(name string) (*model.Ensemble, error) {
		var models []model.Regressor
		switch name {
		case "partial_charge":
			models = []model.Regressor{siteReg(0.1), siteReg(0.3)}
		case "C6_coefficient":
			models = []model.Regressor{constReg(2), constReg(2)}
		default:
			models = []model.Regressor{constReg(1)}
		}
		return model.NewEnsemble(name, identityScaler(), models)
	}
}

func TestIsAvailable(Te *testing.T) {
	for _, name := range AvailableFFPs {
		if !IsAvailable(name) {
			Te.Errorf("%s should be available", name)
		}
	}
	if IsAvailable("bond_order") {
		Te.Error("an unknown precursor should not be available")
	}
}

func TestAnnotate(Te *testing.T) {
	S, err := mof.CIFRead("test/cuo.cif")
	if err != nil {
		Te.Fatal(err)
	}
	o := DefaultOptions()
	o.FFPs = []string{"partial_charge", "C6_coefficient", "QDO_mass"}
	o.Source = stubSource(Te)
	if err := Annotate(S, o); err != nil {
		Te.Fatal(err)
	}
	//the cell must come out neutral, whatever the raw predictions were
	q, err := S.SiteProperty("partial_charge")
	if err != nil {
		Te.Fatal(err)
	}
	total := 0.0
	for _, v := range q {
		total += v
	}
	if math.Abs(total) > 1e-10 {
		Te.Errorf("cell not neutral: total charge %10.8f", total)
	}
	//C6 is predicted in log10: a raw 2 must come back as 100
	c6, err := S.SiteProperty("C6_coefficient")
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range c6 {
		if math.Abs(v-100.0) > 1e-8 {
			Te.Errorf("site %d: log10 prediction not unfolded: got %8.4f, want 100", i, v)
		}
	}
	//QDO_mass is neither shifted nor unfolded
	m, err := S.SiteProperty("QDO_mass")
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range m {
		if math.Abs(v-1.0) > 1e-10 {
			Te.Errorf("site %d: plain prediction altered: got %8.4f, want 1", i, v)
		}
	}
}

func TestAnnotateUnknownFFP(Te *testing.T) {
	S, err := mof.CIFRead("test/cuo.cif")
	if err != nil {
		Te.Fatal(err)
	}
	o := DefaultOptions()
	o.FFPs = []string{"partial_charge", "bond_order"}
	o.Source = stubSource(Te)
	if err := Annotate(S, o); err == nil {
		Te.Error("an unknown precursor name should be rejected before any work")
	}
}

func TestGetFFPs(Te *testing.T) {
	o := DefaultOptions()
	o.FFPs = []string{"partial_charge", "C6_coefficient"}
	o.Source = stubSource(Te)
	o.OutDir = Te.TempDir()
	S, err := GetFFPs("test/cuo.cif", o)
	if err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(o.OutDir, S.Name+".json")
	if _, err := os.Stat(out); err != nil {
		Te.Fatalf("JSON output missing: %s", err.Error())
	}
	R, err := mof.ReadJSON(out)
	if err != nil {
		Te.Fatal(err)
	}
	for _, prop := range o.FFPs {
		orig, _ := S.SiteProperty(prop)
		back, err := R.SiteProperty(prop)
		if err != nil {
			Te.Fatalf("property %s missing from the written JSON", prop)
		}
		for i := range orig {
			if math.Abs(orig[i]-back[i]) > 1e-8 {
				Te.Errorf("property %s site %d changed on disk: %8.5f vs %8.5f", prop, i, back[i], orig[i])
			}
		}
	}
}

func TestGetFFPsSkipJSON(Te *testing.T) {
	o := DefaultOptions()
	o.FFPs = []string{"QDO_charge"}
	o.Source = stubSource(Te)
	o.OutDir = Te.TempDir()
	o.SkipJSON = true
	S, err := GetFFPs("test/cuo.cif", o)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(o.OutDir, S.Name+".json")); err == nil {
		Te.Error("SkipJSON still wrote the JSON file")
	}
}
