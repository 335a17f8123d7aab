/*
 * json_test.go, part of ffp4mof.
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

package mof

import (
	"bytes"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"
)

func TestJSONSchema(Te *testing.T) {
	S, err := CIFRead("test/cuo.cif")
	if err != nil {
		Te.Fatal(err)
	}
	S.SetSiteProperty("partial_charge", []float64{0.5, -0.5})
	var buf bytes.Buffer
	if err := EncodeJSON(S, &buf); err != nil {
		Te.Fatal(err)
	}
	//check the pymatgen markers on the raw document
	doc := make(map[string]interface{})
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		Te.Fatal(err)
	}
	if doc["@class"] != "Structure" || doc["@module"] != "pymatgen.core.structure" {
		Te.Errorf("document lacks the pymatgen markers: %v, %v", doc["@module"], doc["@class"])
	}
	if _, ok := doc["lattice"].(map[string]interface{})["volume"]; !ok {
		Te.Error("lattice sub-document lacks the volume")
	}
}

func TestJSONRoundTrip(Te *testing.T) {
	S, err := CIFRead("test/cuo.cif")
	if err != nil {
		Te.Fatal(err)
	}
	S.SetSiteProperty("partial_charge", []float64{0.5, -0.5})
	S.SetSiteProperty("C6_coefficient", []float64{40.0, 15.0})
	name := filepath.Join(Te.TempDir(), "cuo.json")
	if err := WriteJSON(S, name); err != nil {
		Te.Fatal(err)
	}
	R, err := ReadJSON(name)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Len() != S.Len() {
		Te.Fatalf("site count changed in the round trip: %d vs %d", R.Len(), S.Len())
	}
	for i := 0; i < S.Len(); i++ {
		if R.Site(i).Symbol != S.Site(i).Symbol {
			Te.Errorf("site %d element changed: %s vs %s", i, R.Site(i).Symbol, S.Site(i).Symbol)
		}
		for k := 0; k < 3; k++ {
			if math.Abs(R.Site(i).Frac[k]-S.Site(i).Frac[k]) > 1e-10 {
				Te.Errorf("site %d coordinates drifted", i)
			}
		}
	}
	for _, prop := range []string{"partial_charge", "C6_coefficient"} {
		orig, _ := S.SiteProperty(prop)
		back, err := R.SiteProperty(prop)
		if err != nil {
			Te.Fatalf("property %s lost in the round trip", prop)
		}
		for i := range orig {
			if math.Abs(orig[i]-back[i]) > 1e-10 {
				Te.Errorf("property %s changed at site %d: %8.5f vs %8.5f", prop, i, back[i], orig[i])
			}
		}
	}
	la := S.Lattice.Lengths()
	lb := R.Lattice.Lengths()
	for i := 0; i < 3; i++ {
		if math.Abs(la[i]-lb[i]) > 1e-10 {
			Te.Error("lattice changed in the round trip")
		}
	}
}
