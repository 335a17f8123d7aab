/*
 * cif.go, part of ffp4mof.
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
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//CIF reading. The aim is not to cover every corner of the CIF standard, but
//the subset written by the common MOF databases: one data block, cell
//parameters, symmetry operations (as xyz strings) and the atom_site loop.

//fractional tolerance for merging symmetry-equivalent sites.
const symmetryTol = 1e-3

//CIFRead reads the CIF file with the given name and returns the structure in
//its first data block, with the asymmetric unit expanded by the symmetry
//operations. The structure Name is the file name without directory and
//extension.
func CIFRead(filename string) (*Structure, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, NewError("CIFRead", "failed to open file: %s", err.Error())
	}
	defer f.Close()
	S, err2 := CIFReadFrom(f)
	if err2 != nil {
		return nil, errDecorate(err2, "CIFRead")
	}
	base := filepath.Base(filename)
	S.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return S, nil
}

//CIFReadFrom reads a CIF-format structure from r. See CIFRead.
func CIFReadFrom(r io.Reader) (*Structure, error) {
	toks, err := cifTokens(r)
	if err != nil {
		return nil, errDecorate(err, "CIFReadFrom")
	}
	items, loops := cifParse(toks)
	lat, err := cifLattice(items)
	if err != nil {
		return nil, errDecorate(err, "CIFReadFrom")
	}
	ops, err := cifSymmetry(items, loops)
	if err != nil {
		return nil, errDecorate(err, "CIFReadFrom")
	}
	asym, err := cifSites(loops)
	if err != nil {
		return nil, errDecorate(err, "CIFReadFrom")
	}
	sites := expandSymmetry(asym, ops)
	S, err := NewStructure(lat, sites)
	if err != nil {
		return nil, errDecorate(err, "CIFReadFrom")
	}
	return S, nil
}

//a cifLoop is a loop_ table: the tags naming the columns, plus the values in
//row-major order.
type cifLoop struct {
	tags   []string
	values []string
}

//column returns the index of the column with the given tag, or -1.
func (l *cifLoop) column(tag string) int {
	for i, t := range l.tags {
		if t == tag {
			return i
		}
	}
	return -1
}

//rows returns the number of complete rows in the loop.
func (l *cifLoop) rows() int {
	if len(l.tags) == 0 {
		return 0
	}
	return len(l.values) / len(l.tags)
}

//at returns the value at the given row for the given column index.
func (l *cifLoop) at(row, col int) string {
	return l.values[row*len(l.tags)+col]
}

//cifTokens splits the content of r into CIF tokens: whitespace-separated
//words, quoted strings, and semicolon-delimited text blocks (as one token
//each). Comments are dropped.
func cifTokens(r io.Reader) ([]string, error) {
	toks := make([]string, 0, 1024)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	var text []string
	intext := false
	for scanner.Scan() {
		line := scanner.Text()
		if intext {
			if strings.HasPrefix(line, ";") {
				toks = append(toks, strings.Join(text, "\n"))
				intext = false
			} else {
				text = append(text, line)
			}
			continue
		}
		if strings.HasPrefix(line, ";") {
			text = []string{strings.TrimPrefix(line, ";")}
			intext = true
			continue
		}
		toks = append(toks, splitCIFLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError("cifTokens", "read failed: %s", err.Error())
	}
	if intext {
		return nil, NewError("cifTokens", "unterminated semicolon text field")
	}
	return toks, nil
}

//splitCIFLine splits one line into tokens, honoring single and double quotes
//and dropping unquoted comments.
func splitCIFLine(line string) []string {
	toks := make([]string, 0, 8)
	i := 0
	n := len(line)
	for i < n {
		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		if line[i] == '#' {
			break
		}
		if line[i] == '\'' || line[i] == '"' {
			q := line[i]
			j := i + 1
			for j < n && line[j] != q {
				j++
			}
			toks = append(toks, line[i+1:min(j, n)])
			i = j + 1
			continue
		}
		j := i
		for j < n && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		toks = append(toks, line[i:j])
		i = j
	}
	return toks
}

func isCIFTag(tok string) bool {
	return strings.HasPrefix(tok, "_")
}

func isCIFControl(tok string) bool {
	low := strings.ToLower(tok)
	return isCIFTag(tok) || strings.HasPrefix(low, "loop_") ||
		strings.HasPrefix(low, "data_") || strings.HasPrefix(low, "save_") ||
		low == "stop_" || low == "global_"
}

//cifParse walks the token stream and collects single data items and loops
//from the first data block. Tag names are lowercased.
func cifParse(toks []string) (map[string]string, []*cifLoop) {
	items := make(map[string]string)
	loops := make([]*cifLoop, 0, 4)
	indata := false
	i := 0
	n := len(toks)
	for i < n {
		tok := toks[i]
		low := strings.ToLower(tok)
		switch {
		case strings.HasPrefix(low, "data_"):
			if indata {
				return items, loops //first block wins
			}
			indata = true
			i++
		case low == "loop_":
			l := new(cifLoop)
			i++
			for i < n && isCIFTag(toks[i]) {
				l.tags = append(l.tags, strings.ToLower(toks[i]))
				i++
			}
			for i < n && !isCIFControl(toks[i]) {
				l.values = append(l.values, toks[i])
				i++
			}
			loops = append(loops, l)
		case isCIFTag(tok):
			if i+1 < n && !isCIFControl(toks[i+1]) {
				items[low] = toks[i+1]
				i += 2
			} else {
				i++ //tag with no value, ignore
			}
		default:
			i++ //stray value, ignore
		}
	}
	return items, loops
}

//parseCIFFloat parses a CIF numeric value, dropping a trailing uncertainty
//as in "1.234(5)". The CIF placeholders "." and "?" are errors here.
func parseCIFFloat(s string) (float64, error) {
	if p := strings.IndexByte(s, '('); p >= 0 {
		s = s[:p]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewError("parseCIFFloat", "malformed number %q", s)
	}
	return v, nil
}

//cifLattice builds the lattice from the six cell items.
func cifLattice(items map[string]string) (*Lattice, error) {
	tags := []string{"_cell_length_a", "_cell_length_b", "_cell_length_c",
		"_cell_angle_alpha", "_cell_angle_beta", "_cell_angle_gamma"}
	var v [6]float64
	for i, t := range tags {
		s, ok := items[t]
		if !ok {
			return nil, NewError("cifLattice", "missing cell item %s", t)
		}
		var err error
		v[i], err = parseCIFFloat(s)
		if err != nil {
			return nil, errDecorate(err, "cifLattice")
		}
	}
	lat, err := LatticeFromParameters(v[0], v[1], v[2], v[3], v[4], v[5])
	if err != nil {
		return nil, errDecorate(err, "cifLattice")
	}
	return lat, nil
}

//A symmetryOp is an affine operation on fractional coordinates: f' = R f + t.
type symmetryOp struct {
	rot   [3][3]float64
	trans [3]float64
}

func (op *symmetryOp) apply(f [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = op.rot[i][0]*f[0] + op.rot[i][1]*f[1] + op.rot[i][2]*f[2] + op.trans[i]
	}
	return r
}

var identityOp = symmetryOp{rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

//cifSymmetry collects the symmetry operations, from a loop or a single item.
//Without any, the identity is assumed (the common case for CoRE MOF files,
//which are given in P1).
func cifSymmetry(items map[string]string, loops []*cifLoop) ([]symmetryOp, error) {
	tags := []string{"_symmetry_equiv_pos_as_xyz", "_space_group_symop_operation_xyz"}
	ops := make([]symmetryOp, 0, 8)
	for _, l := range loops {
		for _, t := range tags {
			col := l.column(t)
			if col < 0 {
				continue
			}
			for r := 0; r < l.rows(); r++ {
				op, err := parseSymmetryOp(l.at(r, col))
				if err != nil {
					return nil, errDecorate(err, "cifSymmetry")
				}
				ops = append(ops, op)
			}
			return ops, nil
		}
	}
	for _, t := range tags {
		if s, ok := items[t]; ok {
			op, err := parseSymmetryOp(s)
			if err != nil {
				return nil, errDecorate(err, "cifSymmetry")
			}
			return []symmetryOp{op}, nil
		}
	}
	return []symmetryOp{identityOp}, nil
}

//parseSymmetryOp parses an xyz-style operation such as "-y, x-y+1/2, z".
func parseSymmetryOp(s string) (symmetryOp, error) {
	var op symmetryOp
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return op, NewError("parseSymmetryOp", "operation %q does not have 3 components", s)
	}
	for i, p := range parts {
		if err := parseSymmetryComponent(strings.ToLower(p), &op, i); err != nil {
			return op, errDecorate(err, "parseSymmetryOp")
		}
	}
	return op, nil
}

//parseSymmetryComponent fills one row of the operation from a component such
//as "1/2-x". Terms are a sign followed by x, y, z or a number (decimal or
//fraction).
func parseSymmetryComponent(s string, op *symmetryOp, row int) error {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return NewError("parseSymmetryComponent", "empty component")
	}
	i := 0
	n := len(s)
	for i < n {
		sign := 1.0
		for i < n && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				sign = -sign
			}
			i++
		}
		if i >= n {
			return NewError("parseSymmetryComponent", "dangling sign in %q", s)
		}
		switch s[i] {
		case 'x':
			op.rot[row][0] += sign
			i++
		case 'y':
			op.rot[row][1] += sign
			i++
		case 'z':
			op.rot[row][2] += sign
			i++
		default:
			j := i
			for j < n && (s[j] == '.' || s[j] == '/' || (s[j] >= '0' && s[j] <= '9')) {
				j++
			}
			if j == i {
				return NewError("parseSymmetryComponent", "unexpected character %q in %q", s[i:i+1], s)
			}
			num := s[i:j]
			var v float64
			if k := strings.IndexByte(num, '/'); k >= 0 {
				p, err1 := strconv.ParseFloat(num[:k], 64)
				q, err2 := strconv.ParseFloat(num[k+1:], 64)
				if err1 != nil || err2 != nil || q == 0 {
					return NewError("parseSymmetryComponent", "malformed fraction %q", num)
				}
				v = p / q
			} else {
				var err error
				v, err = strconv.ParseFloat(num, 64)
				if err != nil {
					return NewError("parseSymmetryComponent", "malformed number %q", num)
				}
			}
			op.trans[row] += sign * v
			i = j
		}
	}
	return nil
}

//cifSites reads the asymmetric unit from the atom_site loop.
func cifSites(loops []*cifLoop) ([]*Site, error) {
	var l *cifLoop
	for _, cand := range loops {
		if cand.column("_atom_site_fract_x") >= 0 {
			l = cand
			break
		}
	}
	if l == nil {
		return nil, NewError("cifSites", "no atom_site loop with fractional coordinates found")
	}
	xcol := l.column("_atom_site_fract_x")
	ycol := l.column("_atom_site_fract_y")
	zcol := l.column("_atom_site_fract_z")
	if ycol < 0 || zcol < 0 {
		return nil, NewError("cifSites", "incomplete fractional coordinates in atom_site loop")
	}
	labcol := l.column("_atom_site_label")
	symcol := l.column("_atom_site_type_symbol")
	occcol := l.column("_atom_site_occupancy")
	sites := make([]*Site, 0, l.rows())
	for r := 0; r < l.rows(); r++ {
		s := new(Site)
		var err error
		var f [3]float64
		for k, col := range []int{xcol, ycol, zcol} {
			f[k], err = parseCIFFloat(l.at(r, col))
			if err != nil {
				return nil, NewError("cifSites", "row %d: %s", r, err.Error())
			}
		}
		s.Frac = f
		s.Occupancy = 1
		if occcol >= 0 {
			v := l.at(r, occcol)
			if v != "." && v != "?" {
				s.Occupancy, err = parseCIFFloat(v)
				if err != nil {
					return nil, NewError("cifSites", "row %d: %s", r, err.Error())
				}
			}
		}
		if labcol >= 0 {
			s.Label = l.at(r, labcol)
		}
		if symcol >= 0 {
			s.Symbol = cleanSymbol(l.at(r, symcol))
		} else {
			s.Symbol = symbolFromLabel(s.Label)
		}
		if s.Symbol == "" {
			return nil, NewError("cifSites", "row %d: could not determine the element", r)
		}
		if s.Label == "" {
			s.Label = s.Symbol
		}
		sites = append(sites, s)
	}
	if len(sites) == 0 {
		return nil, NewError("cifSites", "empty atom_site loop")
	}
	return sites, nil
}

//cleanSymbol strips oxidation-state decorations, as in "Zn2+" or "O2-".
func cleanSymbol(s string) string {
	r := strings.TrimRight(s, "0123456789+-")
	if len(r) > 2 {
		r = r[:2]
	}
	return normalizeSymbol(r)
}

//symbolFromLabel guesses the element from an atom label such as "Zn3" or
//"C12A": the leading letters, tried as a 2-letter and then a 1-letter symbol
//against the atomic number table.
func symbolFromLabel(label string) string {
	letters := ""
	for _, c := range label {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			letters += string(c)
		} else {
			break
		}
	}
	if letters == "" {
		return ""
	}
	if len(letters) >= 2 {
		two := normalizeSymbol(letters[:2])
		if _, ok := symbolZ[two]; ok {
			return two
		}
	}
	one := normalizeSymbol(letters[:1])
	if _, ok := symbolZ[one]; ok {
		return one
	}
	return normalizeSymbol(letters)
}

//normalizeSymbol fixes capitalization, "ZN" -> "Zn".
func normalizeSymbol(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//expandSymmetry applies every operation to every asymmetric site, wraps the
//results into the cell and merges duplicates within symmetryTol.
func expandSymmetry(asym []*Site, ops []symmetryOp) []*Site {
	sites := make([]*Site, 0, len(asym)*len(ops))
	for _, s := range asym {
		for i := range ops {
			f := ops[i].apply(s.Frac)
			for k := 0; k < 3; k++ {
				f[k] = wrapFrac(f[k])
			}
			if findPeriodicDup(sites, f) {
				continue
			}
			n := s.Copy()
			n.Frac = f
			sites = append(sites, n)
		}
	}
	return sites
}

//findPeriodicDup reports whether f is, up to lattice translations, already in
//sites.
func findPeriodicDup(sites []*Site, f [3]float64) bool {
	for _, s := range sites {
		dup := true
		for k := 0; k < 3; k++ {
			d := math.Abs(wrapHalf(f[k] - s.Frac[k]))
			if d > symmetryTol {
				dup = false
				break
			}
		}
		if dup {
			return true
		}
	}
	return false
}
