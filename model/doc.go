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

/*Package model loads and runs the pre-trained force-field precursor models.

Each precursor is predicted by an ensemble of five gradient-boosted-tree
regressors preceded by a standard scaler. The artifacts are distributed as a
tar.gz archive that Install unpacks under the data root (the FFP4MOF_DATA
environment variable, or ~/.ffp4mof by default), laid out as

	scalers/<precursor>/scaler.json.gz
	models/<precursor>/best_model_{0..4}.txt

Model files are LightGBM text dumps (.txt) or XGBoost JSON dumps (.json),
read with the leaves library; the scaler is a gzipped JSON document with the
per-feature means and scales, which also pins the feature count the ensemble
was trained on.*/
package model
