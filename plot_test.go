/*
 * plot_test.go, part of ffp4mof.
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
	"os"
	"path/filepath"
	"testing"
)

func TestPropertyHistogram(Te *testing.T) {
	S, err := CIFRead("test/cuo.cif")
	if err != nil {
		Te.Fatal(err)
	}
	S.SetSiteProperty("partial_charge", []float64{0.5, -0.5})
	name := filepath.Join(Te.TempDir(), "charges.png")
	if err := PropertyHistogram(S, "partial_charge", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil || info.Size() == 0 {
		Te.Error("histogram file missing or empty")
	}
	if err := PropertyHistogram(S, "nope", name); err == nil {
		Te.Error("plotting a missing property should fail")
	}
}
