/*
 * plot.go, part of ffp4mof.
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
 * ffp4mof is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package mof

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//PropertyHistogram plots the distribution of the named per-site property
//(say, the predicted partial charges) as a histogram, saved to filename
//(the extension selects the format, e.g. .png or .pdf).
func PropertyHistogram(S *Structure, property, filename string) error {
	vals, err := S.SiteProperty(property)
	if err != nil {
		return errDecorate(err, "PropertyHistogram")
	}
	pts := make(plotter.Values, len(vals))
	copy(pts, vals)
	p := plot.New()
	p.Title.Text = S.Name
	p.X.Label.Text = property
	p.Y.Label.Text = "sites"
	nbins := len(vals) / 4
	if nbins < 10 {
		nbins = 10
	}
	if nbins > 50 {
		nbins = 50
	}
	h, err2 := plotter.NewHist(pts, nbins)
	if err2 != nil {
		return NewError("PropertyHistogram", "building histogram: %s", err2.Error())
	}
	p.Add(h)
	if err2 := p.Save(4*vg.Inch, 4*vg.Inch, filename); err2 != nil {
		return NewError("PropertyHistogram", "saving plot: %s", err2.Error())
	}
	return nil
}
