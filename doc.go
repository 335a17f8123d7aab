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
 *
 * ffp4mof is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package mof provides the periodic-structure types used through the ffp4mof
library: a lattice, crystallographic sites and the Structure that joins them,
plus facilities for reading CIF files, assigning bonds under periodic boundary
conditions, and writing structures (with their predicted force-field
precursors attached as site properties) as pymatgen-compatible JSON.


	**ffp4mof Capabilities**

    Reads CIF files, including symmetry expansion of the asymmetric unit.

    Periodic (minimum-image) distances and distance matrices, correct
	also for skewed cells.

    Assigns bonds from covalent radii, across periodic boundaries.

    Carries named per-site properties (the force-field precursors) and
	serializes them in a JSON schema that pymatgen reads directly.

    Plots distributions of per-site properties (uses the gonum/plot library).

The per-site featurization lives in the featurize subpackage, the scaler and
gradient-boosted-tree ensembles in the model subpackage, and the high-level
GetFFPs pipeline in the predict subpackage.

Coordinates are kept in gonum mat.Dense matrices with one site per row, in
Angstroms. Fractional coordinates are row vectors relative to the lattice
row-vector matrix.*/
package mof
