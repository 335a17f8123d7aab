/*
 * main.go, part of ffp4mof.
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

//ffp4mof predicts force-field precursors for the metal-organic frameworks in
//the given CIF files and writes one pymatgen-compatible JSON per structure.
//
//	ffp4mof [flags] structure.cif [more.cif ...]
//	ffp4mof -install ffp_tools.tar.gz
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	mof "github.com/rmera/ffp4mof"
	"github.com/rmera/ffp4mof/model"
	"github.com/rmera/ffp4mof/predict"
)

func main() {
	ffps := flag.String("ffps", "", "comma-separated precursors to predict (default: all of them)")
	dataroot := flag.String("data", "", "artifact directory (default: $FFP4MOF_DATA or ~/.ffp4mof)")
	outdir := flag.String("out", ".", "directory the JSON files are written to")
	histo := flag.String("plot", "", "also save a histogram of the named precursor, one PNG per structure")
	logfile := flag.String("logfile", "", "append logs to this file in addition to the console")
	install := flag.String("install", "", "unpack the given model archive under the data root and exit")
	list := flag.Bool("list", false, "list the precursors available under the data root and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] structure.cif [more.cif ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log, closer, err := setupLog(*logfile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	root := *dataroot
	if root == "" {
		root, err = model.DefaultDataRoot()
		if err != nil {
			log.Error("no usable data root", "error", err)
			os.Exit(1)
		}
	}

	if *install != "" {
		if err := model.Install(*install, root); err != nil {
			log.Error("installing model archive failed", "archive", *install, "error", err)
			os.Exit(1)
		}
		log.Info("model archive installed", "archive", *install, "dataroot", root)
		return
	}
	if *list {
		for _, name := range model.Available(root) {
			fmt.Println(name)
		}
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	opts := predict.DefaultOptions()
	opts.DataRoot = root
	opts.OutDir = *outdir
	if *ffps != "" {
		opts.FFPs = strings.Split(*ffps, ",")
	}

	failed := 0
	for _, cif := range flag.Args() {
		log.Info("predicting", "cif", cif)
		S, err := predict.GetFFPs(cif, opts)
		if err != nil {
			log.Error("prediction failed", "cif", cif, "error", err)
			failed++
			continue
		}
		log.Info("structure written", "name", S.Name, "sites", S.Len(), "json", S.Name+".json")
		if *histo != "" {
			png := S.Name + "_" + *histo + ".png"
			if err := mof.PropertyHistogram(S, *histo, png); err != nil {
				log.Error("histogram failed", "cif", cif, "error", err)
				failed++
				continue
			}
			log.Info("histogram written", "file", png)
		}
	}
	if failed > 0 {
		log.Error("finished with failures", "failed", failed, "total", flag.NArg())
		os.Exit(1)
	}
}

//setupLog builds the logger: plain text to stderr, and, when a log file is
//given, the same records fanned out to it.
func setupLog(logfile string) (*slog.Logger, *os.File, error) {
	console := slog.NewTextHandler(os.Stderr, nil)
	if logfile == "" {
		return slog.New(console), nil, nil
	}
	f, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logfile, err)
	}
	h := slogmulti.Fanout(console, slog.NewTextHandler(f, nil))
	return slog.New(h), f, nil
}
