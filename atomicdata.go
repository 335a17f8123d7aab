/*
 * atomicdata.go, part of ffp4mof.
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

//The tables cover the elements that actually occur in the common MOF
//databases (CoRE MOF, CSD-derived sets): the organic block plus the metals.
//Elements are identified by their symbol, as read from the CIF file.

//A map for assigning atomic numbers to elements.
var symbolZ = map[string]int{
	"H": 1, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17,
	"K": 19, "Ca": 20, "Sc": 21, "Ti": 22, "V": 23, "Cr": 24, "Mn": 25,
	"Fe": 26, "Co": 27, "Ni": 28, "Cu": 29, "Zn": 30, "Ga": 31, "Ge": 32,
	"As": 33, "Se": 34, "Br": 35, "Rb": 37, "Sr": 38, "Y": 39, "Zr": 40,
	"Nb": 41, "Mo": 42, "Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48,
	"In": 49, "Sn": 50, "Sb": 51, "Te": 52, "I": 53, "Cs": 55, "Ba": 56,
	"La": 57, "Ce": 58, "Nd": 60, "Sm": 62, "Eu": 63, "Gd": 64, "Tb": 65,
	"Dy": 66, "Er": 68, "Yb": 70, "Hf": 72, "W": 74, "Re": 75, "Ir": 77,
	"Pt": 78, "Au": 79, "Hg": 80, "Tl": 81, "Pb": 82, "Bi": 83, "Th": 90,
	"U": 92,
}

//A map for assigning mass (in amu) to elements.
var symbolMass = map[string]float64{
	"H": 1.008, "Li": 6.94, "Be": 9.012, "B": 10.81, "C": 12.011,
	"N": 14.007, "O": 15.999, "F": 18.998, "Na": 22.990, "Mg": 24.305,
	"Al": 26.982, "Si": 28.085, "P": 30.974, "S": 32.06, "Cl": 35.45,
	"K": 39.098, "Ca": 40.078, "Sc": 44.956, "Ti": 47.867, "V": 50.942,
	"Cr": 51.996, "Mn": 54.938, "Fe": 55.845, "Co": 58.933, "Ni": 58.693,
	"Cu": 63.546, "Zn": 65.38, "Ga": 69.723, "Ge": 72.630, "As": 74.922,
	"Se": 78.971, "Br": 79.904, "Rb": 85.468, "Sr": 87.62, "Y": 88.906,
	"Zr": 91.224, "Nb": 92.906, "Mo": 95.95, "Ru": 101.07, "Rh": 102.906,
	"Pd": 106.42, "Ag": 107.868, "Cd": 112.414, "In": 114.818, "Sn": 118.710,
	"Sb": 121.760, "Te": 127.60, "I": 126.904, "Cs": 132.905, "Ba": 137.327,
	"La": 138.905, "Ce": 140.116, "Nd": 144.242, "Sm": 150.36, "Eu": 151.964,
	"Gd": 157.25, "Tb": 158.925, "Dy": 162.500, "Er": 167.259, "Yb": 173.045,
	"Hf": 178.49, "W": 183.84, "Re": 186.207, "Ir": 192.217, "Pt": 195.084,
	"Au": 196.967, "Hg": 200.592, "Tl": 204.38, "Pb": 207.2, "Bi": 208.980,
	"Th": 232.038, "U": 238.029,
}

//A map for assigning covalent radii (in A) to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J).
//For C the sp3 radius, for Mn, Fe and Co the high-spin radius.
var symbolCovrad = map[string]float64{
	"H": 0.31, "Li": 1.28, "Be": 0.96, "B": 0.84, "C": 0.76,
	"N": 0.71, "O": 0.66, "F": 0.57, "Na": 1.66, "Mg": 1.41,
	"Al": 1.21, "Si": 1.11, "P": 1.07, "S": 1.05, "Cl": 1.02,
	"K": 2.03, "Ca": 1.76, "Sc": 1.70, "Ti": 1.60, "V": 1.53,
	"Cr": 1.39, "Mn": 1.61, "Fe": 1.52, "Co": 1.50, "Ni": 1.24,
	"Cu": 1.32, "Zn": 1.22, "Ga": 1.22, "Ge": 1.20, "As": 1.19,
	"Se": 1.20, "Br": 1.20, "Rb": 2.20, "Sr": 1.95, "Y": 1.90,
	"Zr": 1.75, "Nb": 1.64, "Mo": 1.54, "Ru": 1.46, "Rh": 1.42,
	"Pd": 1.39, "Ag": 1.45, "Cd": 1.44, "In": 1.42, "Sn": 1.39,
	"Sb": 1.39, "Te": 1.38, "I": 1.39, "Cs": 2.44, "Ba": 2.15,
	"La": 2.07, "Ce": 2.04, "Nd": 2.01, "Sm": 1.98, "Eu": 1.98,
	"Gd": 1.96, "Tb": 1.94, "Dy": 1.92, "Er": 1.89, "Yb": 1.87,
	"Hf": 1.75, "W": 1.62, "Re": 1.51, "Ir": 1.41, "Pt": 1.36,
	"Au": 1.36, "Hg": 1.32, "Tl": 1.45, "Pb": 1.46, "Bi": 1.48,
	"Th": 2.06, "U": 1.96,
}

//A map for assigning Pauling electronegativities to elements.
var symbolElectroneg = map[string]float64{
	"H": 2.20, "Li": 0.98, "Be": 1.57, "B": 2.04, "C": 2.55,
	"N": 3.04, "O": 3.44, "F": 3.98, "Na": 0.93, "Mg": 1.31,
	"Al": 1.61, "Si": 1.90, "P": 2.19, "S": 2.58, "Cl": 3.16,
	"K": 0.82, "Ca": 1.00, "Sc": 1.36, "Ti": 1.54, "V": 1.63,
	"Cr": 1.66, "Mn": 1.55, "Fe": 1.83, "Co": 1.88, "Ni": 1.91,
	"Cu": 1.90, "Zn": 1.65, "Ga": 1.81, "Ge": 2.01, "As": 2.18,
	"Se": 2.55, "Br": 2.96, "Rb": 0.82, "Sr": 0.95, "Y": 1.22,
	"Zr": 1.33, "Nb": 1.60, "Mo": 2.16, "Ru": 2.20, "Rh": 2.28,
	"Pd": 2.20, "Ag": 1.93, "Cd": 1.69, "In": 1.78, "Sn": 1.96,
	"Sb": 2.05, "Te": 2.10, "I": 2.66, "Cs": 0.79, "Ba": 0.89,
	"La": 1.10, "Ce": 1.12, "Nd": 1.14, "Sm": 1.17, "Eu": 1.20,
	"Gd": 1.20, "Tb": 1.20, "Dy": 1.22, "Er": 1.24, "Yb": 1.10,
	"Hf": 1.30, "W": 2.36, "Re": 1.90, "Ir": 2.20, "Pt": 2.28,
	"Au": 2.54, "Hg": 2.00, "Tl": 1.62, "Pb": 2.33, "Bi": 2.02,
	"Th": 1.30, "U": 1.38,
}

//A map for assigning first ionization energies (in eV) to elements.
//Values from the NIST ASD compilation.
var symbolIonization = map[string]float64{
	"H": 13.598, "Li": 5.392, "Be": 9.323, "B": 8.298, "C": 11.260,
	"N": 14.534, "O": 13.618, "F": 17.423, "Na": 5.139, "Mg": 7.646,
	"Al": 5.986, "Si": 8.152, "P": 10.487, "S": 10.360, "Cl": 12.968,
	"K": 4.341, "Ca": 6.113, "Sc": 6.561, "Ti": 6.828, "V": 6.746,
	"Cr": 6.767, "Mn": 7.434, "Fe": 7.902, "Co": 7.881, "Ni": 7.640,
	"Cu": 7.726, "Zn": 9.394, "Ga": 5.999, "Ge": 7.899, "As": 9.789,
	"Se": 9.752, "Br": 11.814, "Rb": 4.177, "Sr": 5.695, "Y": 6.217,
	"Zr": 6.634, "Nb": 6.759, "Mo": 7.092, "Ru": 7.360, "Rh": 7.459,
	"Pd": 8.337, "Ag": 7.576, "Cd": 8.994, "In": 5.786, "Sn": 7.344,
	"Sb": 8.608, "Te": 9.010, "I": 10.451, "Cs": 3.894, "Ba": 5.212,
	"La": 5.577, "Ce": 5.539, "Nd": 5.525, "Sm": 5.644, "Eu": 5.670,
	"Gd": 6.150, "Tb": 5.864, "Dy": 5.939, "Er": 6.108, "Yb": 6.254,
	"Hf": 6.825, "W": 7.864, "Re": 7.834, "Ir": 8.967, "Pt": 8.959,
	"Au": 9.226, "Hg": 10.438, "Tl": 6.108, "Pb": 7.417, "Bi": 7.286,
	"Th": 6.307, "U": 6.194,
}

//AtomicNumber returns the atomic number for the element with the given symbol.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, NewError("AtomicNumber", "no atomic number tabulated for element %s", symbol)
	}
	return z, nil
}

//Mass returns the atomic mass, in amu, for the element with the given symbol.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, NewError("Mass", "no mass tabulated for element %s", symbol)
	}
	return m, nil
}

//CovalentRadius returns the covalent radius, in A, for the element with the
//given symbol.
func CovalentRadius(symbol string) (float64, error) {
	r, ok := symbolCovrad[symbol]
	if !ok {
		return 0, NewError("CovalentRadius", "no covalent radius tabulated for element %s", symbol)
	}
	return r, nil
}

//Electronegativity returns the Pauling electronegativity for the element with
//the given symbol.
func Electronegativity(symbol string) (float64, error) {
	e, ok := symbolElectroneg[symbol]
	if !ok {
		return 0, NewError("Electronegativity", "no electronegativity tabulated for element %s", symbol)
	}
	return e, nil
}

//IonizationEnergy returns the first ionization energy, in eV, for the element
//with the given symbol.
func IonizationEnergy(symbol string) (float64, error) {
	e, ok := symbolIonization[symbol]
	if !ok {
		return 0, NewError("IonizationEnergy", "no ionization energy tabulated for element %s", symbol)
	}
	return e, nil
}

//KnownElement returns whether every table in the package has an entry for the
//element with the given symbol.
func KnownElement(symbol string) bool {
	_, ok := symbolZ[symbol]
	if !ok {
		return false
	}
	_, ok = symbolIonization[symbol]
	if !ok {
		return false
	}
	_, ok = symbolElectroneg[symbol]
	return ok
}
