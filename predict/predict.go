/*
 * predict.go, part of ffp4mof.
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

/*Package predict ties the pipeline together: it reads a CIF file, computes
the per-site features, runs the pre-trained ensembles for the requested
force-field precursors, post-processes the predictions and writes the
annotated structure as pymatgen-compatible JSON.*/
package predict

import (
	"math"
	"path/filepath"

	mof "github.com/rmera/ffp4mof"
	"github.com/rmera/ffp4mof/featurize"
	"github.com/rmera/ffp4mof/model"
)

//AvailableFFPs lists every force-field precursor the shipped artifacts
//cover, in their canonical order.
var AvailableFFPs = []string{
	"partial_charge",
	"fluctuating_polarizability",
	"FF_polarizability",
	"C6_coefficient",
	"QDO_mass",
	"QDO_charge",
	"QDO_frequency",
	"a_electron_parameter",
	"b_electron_parameter",
}

//The polarizabilities and the dispersion coefficient span several orders of
//magnitude, so their models are trained on log10 of the target and the
//predictions have to be unfolded.
var log10FFPs = map[string]bool{
	"fluctuating_polarizability": true,
	"FF_polarizability":          true,
	"C6_coefficient":             true,
}

//IsAvailable returns whether name is a known force-field precursor.
func IsAvailable(name string) bool {
	for _, f := range AvailableFFPs {
		if f == name {
			return true
		}
	}
	return false
}

//Options tunes GetFFPs. The zero value (or a nil *Options) means: predict
//every precursor, with the artifacts from the default data root, writing the
//JSON next to the current directory.
type Options struct {
	FFPs     []string //precursors to predict; nil means all of them
	DataRoot string   //artifact directory; "" means model.DefaultDataRoot()
	OutDir   string   //where the JSON lands; "" means the current directory
	SkipJSON bool     //compute and attach, but write nothing
	//Source, when not nil, replaces model.Read as the ensemble supplier.
	//It is how the tests (or a caller with in-memory models) plug in.
	Source func(name string) (*model.Ensemble, error)
}

//DefaultOptions returns the default settings for GetFFPs.
func DefaultOptions() *Options {
	return &Options{}
}

//GetFFPs reads the structure in the named CIF file, predicts its force-field
//precursors and attaches them as site properties, writes the structure to
//<structure name>.json (unless told not to) and returns it.
//
//The partial charges are shifted by their mean so the cell stays neutral,
//and the log10-trained precursors are returned unfolded (as 10^prediction).
func GetFFPs(filename string, opts ...*Options) (*mof.Structure, error) {
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}
	S, err := mof.CIFRead(filename)
	if err != nil {
		return nil, wrap(err, "GetFFPs")
	}
	if err := Annotate(S, o); err != nil {
		return nil, wrap(err, "GetFFPs")
	}
	if o.SkipJSON {
		return S, nil
	}
	out := filepath.Join(o.OutDir, S.Name+".json")
	if err := mof.WriteJSON(S, out); err != nil {
		return nil, wrap(err, "GetFFPs")
	}
	return S, nil
}

//Annotate predicts the requested precursors for an already-loaded structure
//and attaches them as site properties. The feature matrix is computed once
//and shared by every ensemble.
func Annotate(S *mof.Structure, o *Options) error {
	ffps := o.FFPs
	if ffps == nil {
		ffps = AvailableFFPs
	}
	for _, name := range ffps {
		if !IsAvailable(name) {
			return mof.NewError("Annotate", "unknown force-field precursor %q", name)
		}
	}
	source := o.Source
	if source == nil {
		dataroot := o.DataRoot
		if dataroot == "" {
			var err error
			dataroot, err = model.DefaultDataRoot()
			if err != nil {
				return wrap(err, "Annotate")
			}
		}
		source = func(name string) (*model.Ensemble, error) {
			return model.Read(dataroot, name)
		}
	}
	F, err := featurize.Features(S)
	if err != nil {
		return wrap(err, "Annotate")
	}
	for _, name := range ffps {
		E, err := source(name)
		if err != nil {
			return wrap(err, "Annotate")
		}
		vals, err := E.Predict(F)
		if err != nil {
			return wrap(err, "Annotate")
		}
		if name == "partial_charge" {
			neutralize(vals)
		}
		if log10FFPs[name] {
			unfoldLog10(vals)
		}
		if err := S.SetSiteProperty(name, vals); err != nil {
			return wrap(err, "Annotate")
		}
	}
	return nil
}

//neutralize shifts the charges by their mean, so they sum to zero over the
//cell.
func neutralize(vals []float64) {
	m := 0.0
	for _, v := range vals {
		m += v
	}
	m /= float64(len(vals))
	for i := range vals {
		vals[i] -= m
	}
}

//unfoldLog10 replaces each value x with 10^x.
func unfoldLog10(vals []float64) {
	for i := range vals {
		vals[i] = math.Pow(10, vals[i])
	}
}

func wrap(err error, caller string) error {
	if e, ok := err.(mof.Error); ok {
		e.Decorate(caller)
		return e
	}
	return mof.NewError(caller, "%s", err.Error())
}
