/*
 * bonds_test.go, part of ffp4mof.
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
	"math"
	"testing"
)

//Cu-O at 2.0 A, well under the covalent criterion of
//1.32 + 0.66 + 0.5 = 2.48 A.
func cuoStructure(Te *testing.T) *Structure {
	S, err := CIFRead("test/cuo.cif")
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func TestAssignBonds(Te *testing.T) {
	S := cuoStructure(Te)
	bonds, err := AssignBonds(S)
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 1 {
		Te.Fatalf("expected 1 Cu-O bond, got %d", len(bonds))
	}
	b := bonds[0]
	if math.Abs(b.Dist-2.0) > 1e-8 {
		Te.Errorf("bond distance: got %8.5f, want 2.0", b.Dist)
	}
	if b.Cross(b.At1) != b.At2 {
		Te.Error("Cross does not walk the bond")
	}
}

func TestAdjacencyMatrix(Te *testing.T) {
	S := cuoStructure(Te)
	adj, dist, err := AdjacencyMatrix(S)
	if err != nil {
		Te.Fatal(err)
	}
	if adj.At(0, 1) != 1 {
		Te.Error("Cu and O should be adjacent")
	}
	if adj.At(0, 0) != 0 {
		Te.Error("a site must not be adjacent to itself")
	}
	if math.Abs(dist.At(0, 1)-2.0) > 1e-8 {
		Te.Errorf("distance matrix entry: got %8.5f, want 2.0", dist.At(0, 1))
	}
	neigh := BondedTo(adj, 0)
	if len(neigh) != 1 || neigh[0] != 1 {
		Te.Errorf("BondedTo(0): got %v, want [1]", neigh)
	}
}
