/*
 * json.go, part of ffp4mof.
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

package mof

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
)

//Structures annotated with force-field precursors are exchanged with the
//Python world as pymatgen Structure dictionaries, so the output of the
//pipeline can be loaded with pymatgen's Structure.from_file/from_dict and the
//precursors recovered from the site properties. The schema below matches
//pymatgen's Structure.as_dict().

//JSONLattice is the pymatgen lattice sub-document.
type JSONLattice struct {
	Matrix [3][3]float64 `json:"matrix"`
	A      float64       `json:"a"`
	B      float64       `json:"b"`
	C      float64       `json:"c"`
	Alpha  float64       `json:"alpha"`
	Beta   float64       `json:"beta"`
	Gamma  float64       `json:"gamma"`
	Volume float64       `json:"volume"`
}

//JSONSpecies is one entry of the species list of a site.
type JSONSpecies struct {
	Element string  `json:"element"`
	Occu    float64 `json:"occu"`
}

//JSONSite is one site of the structure, with its properties (the force-field
//precursors, among others).
type JSONSite struct {
	Species    []JSONSpecies      `json:"species"`
	Abc        [3]float64         `json:"abc"`
	XYZ        [3]float64         `json:"xyz"`
	Label      string             `json:"label"`
	Properties map[string]float64 `json:"properties"`
}

//JSONStructure is the full pymatgen Structure document.
type JSONStructure struct {
	Module  string       `json:"@module"`
	Class   string       `json:"@class"`
	Charge  *float64     `json:"charge"`
	Lattice *JSONLattice `json:"lattice"`
	Sites   []*JSONSite  `json:"sites"`
}

const (
	pymatgenModule = "pymatgen.core.structure"
	pymatgenClass  = "Structure"
)

//asJSONStructure converts a Structure to its serializable form.
func asJSONStructure(S *Structure) *JSONStructure {
	J := new(JSONStructure)
	J.Module = pymatgenModule
	J.Class = pymatgenClass
	l := S.Lattice.Lengths()
	a := S.Lattice.Angles()
	m := S.Lattice.Matrix()
	jl := &JSONLattice{A: l[0], B: l[1], C: l[2], Alpha: a[0], Beta: a[1], Gamma: a[2], Volume: S.Lattice.Volume()}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			jl.Matrix[i][j] = m.At(i, j)
		}
	}
	J.Lattice = jl
	names := S.SitePropertyNames()
	J.Sites = make([]*JSONSite, S.Len())
	for i, s := range S.Sites {
		js := new(JSONSite)
		js.Species = []JSONSpecies{{Element: s.Symbol, Occu: s.Occupancy}}
		js.Abc = s.Frac
		js.XYZ = S.Lattice.Cart(s.Frac)
		js.Label = s.Label
		js.Properties = make(map[string]float64, len(names))
		for _, name := range names {
			v, _ := S.SiteProperty(name) //names come from the structure itself
			js.Properties[name] = v[i]
		}
		J.Sites[i] = js
	}
	return J
}

//EncodeJSON writes the structure to out in the pymatgen Structure schema.
func EncodeJSON(S *Structure, out io.Writer) error {
	if err := S.Corrupted(); err != nil {
		return errDecorate(err, "EncodeJSON")
	}
	enc := json.NewEncoder(out)
	if err := enc.Encode(asJSONStructure(S)); err != nil {
		return NewError("EncodeJSON", "encoding failed: %s", err.Error())
	}
	return nil
}

//WriteJSON writes the structure to the named file in the pymatgen Structure
//schema.
func WriteJSON(S *Structure, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return NewError("WriteJSON", "failed to create file: %s", err.Error())
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := EncodeJSON(S, w); err != nil {
		return errDecorate(err, "WriteJSON")
	}
	if err := w.Flush(); err != nil {
		return NewError("WriteJSON", "write failed: %s", err.Error())
	}
	return nil
}

//DecodeJSON reads a structure in the pymatgen Structure schema from in.
//Per-site properties are gathered back into the structure's site properties.
func DecodeJSON(in io.Reader) (*Structure, error) {
	J := new(JSONStructure)
	dec := json.NewDecoder(in)
	if err := dec.Decode(J); err != nil {
		return nil, NewError("DecodeJSON", "decoding failed: %s", err.Error())
	}
	if J.Lattice == nil || len(J.Sites) == 0 {
		return nil, NewError("DecodeJSON", "document has no lattice or no sites")
	}
	vecs := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		vecs = append(vecs, J.Lattice.Matrix[i][:]...)
	}
	lat, err := NewLattice(vecs)
	if err != nil {
		return nil, errDecorate(err, "DecodeJSON")
	}
	sites := make([]*Site, len(J.Sites))
	for i, js := range J.Sites {
		if len(js.Species) == 0 {
			return nil, NewError("DecodeJSON", "site %d has no species", i)
		}
		sites[i] = &Site{
			Symbol:    js.Species[0].Element,
			Label:     js.Label,
			Occupancy: js.Species[0].Occu,
			Frac:      js.Abc,
		}
	}
	S, err := NewStructure(lat, sites)
	if err != nil {
		return nil, errDecorate(err, "DecodeJSON")
	}
	//regroup the per-site property maps into per-property slices
	for name := range J.Sites[0].Properties {
		vals := make([]float64, len(J.Sites))
		complete := true
		for i, js := range J.Sites {
			v, ok := js.Properties[name]
			if !ok {
				complete = false
				break
			}
			vals[i] = v
		}
		if complete {
			S.SetSiteProperty(name, vals) //len checked above
		}
	}
	return S, nil
}

//ReadJSON reads a structure in the pymatgen Structure schema from the named
//file.
func ReadJSON(filename string) (*Structure, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, NewError("ReadJSON", "failed to open file: %s", err.Error())
	}
	defer f.Close()
	S, err2 := DecodeJSON(bufio.NewReader(f))
	if err2 != nil {
		return nil, errDecorate(err2, "ReadJSON")
	}
	return S, nil
}
