/*
 * store.go, part of ffp4mof.
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

package model

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	mof "github.com/rmera/ffp4mof"
)

//DataRootEnv, when set, overrides the default artifact directory.
const DataRootEnv = "FFP4MOF_DATA"

//DefaultDataRoot returns the directory the artifacts are looked up in: the
//DataRootEnv environment variable if set, ~/.ffp4mof otherwise.
func DefaultDataRoot() (string, error) {
	if d := os.Getenv(DataRootEnv); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", mof.NewError("DefaultDataRoot", "no home directory and %s not set: %s", DataRootEnv, err.Error())
	}
	return filepath.Join(home, ".ffp4mof"), nil
}

func scalerPath(dataroot, name string) string {
	return filepath.Join(dataroot, "scalers", name, "scaler.json.gz")
}

func modelPath(dataroot, name string, i int) string {
	return filepath.Join(dataroot, "models", name, fmt.Sprintf("best_model_%d", i))
}

//Read loads the full ensemble for the named precursor from the data root.
func Read(dataroot, name string) (*Ensemble, error) {
	sc, err := ReadScaler(scalerPath(dataroot, name))
	if err != nil {
		return nil, mof.NewError("model.Read", "%s: %s", name, err.Error())
	}
	models := make([]Regressor, 0, EnsembleSize)
	for i := 0; i < EnsembleSize; i++ {
		base := modelPath(dataroot, name, i)
		var m Regressor
		var err error
		for _, ext := range []string{".txt", ".json"} {
			if _, serr := os.Stat(base + ext); serr == nil {
				m, err = ReadRegressor(base + ext)
				break
			}
		}
		if m == nil && err == nil {
			err = mof.NewError("model.Read", "no model file at %s.{txt,json}", base)
		}
		if err != nil {
			return nil, mof.NewError("model.Read", "%s: %s", name, err.Error())
		}
		models = append(models, m)
	}
	E, err := NewEnsemble(name, sc, models)
	if err != nil {
		return nil, err
	}
	return E, nil
}

//Available returns the precursor names with a scaler under the data root,
//sorted. It does not verify the model files; Read does.
func Available(dataroot string) []string {
	entries, err := os.ReadDir(filepath.Join(dataroot, "scalers"))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(scalerPath(dataroot, e.Name())); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

//Install unpacks the distributed artifact archive (a tar.gz with the
//scalers/ and models/ trees) under dataroot, creating it if needed. Entries
//that would escape dataroot are rejected.
func Install(archive, dataroot string) error {
	f, err := os.Open(archive)
	if err != nil {
		return mof.NewError("Install", "failed to open archive: %s", err.Error())
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return mof.NewError("Install", "%s: not a gzip archive: %s", archive, err.Error())
	}
	defer gz.Close()
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return mof.NewError("Install", "%s: corrupt archive: %s", archive, err.Error())
		}
		name := filepath.Clean(hdr.Name)
		if filepath.IsAbs(name) || strings.HasPrefix(name, "..") {
			return mof.NewError("Install", "archive entry %q escapes the data root", hdr.Name)
		}
		target := filepath.Join(dataroot, name)
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return mof.NewError("Install", "creating %s: %s", target, err.Error())
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return mof.NewError("Install", "creating %s: %s", filepath.Dir(target), err.Error())
			}
			out, err := os.Create(target)
			if err != nil {
				return mof.NewError("Install", "creating %s: %s", target, err.Error())
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return mof.NewError("Install", "writing %s: %s", target, err.Error())
			}
			if err := out.Close(); err != nil {
				return mof.NewError("Install", "closing %s: %s", target, err.Error())
			}
		default:
			//symlinks and the like have no business in a model archive
			return mof.NewError("Install", "archive entry %q has unsupported type %d", hdr.Name, hdr.Typeflag)
		}
	}
	return nil
}
