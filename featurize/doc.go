/*
 * doc.go, part of ffp4mof.
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

/*Package featurize computes the per-site feature matrix that the force-field
precursor models consume. For each site of a periodic structure it
concatenates, in this fixed order:

    AGNI radial fingerprints (8)
    Coordination-likelihood fingerprint from Voronoi solid angles (24)
    Two-shell ionization energy/electronegativity descriptors (10)
    Local (Steinhardt-type) order parameters (6)
    Voronoi polyhedron fingerprints (30)

The column layout is part of the model contract: the scaler artifacts record
the expected width and the loaders reject anything else, so a change here
requires re-exported model artifacts.*/
package featurize
