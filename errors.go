/*
 * errors.go, part of ffp4mof.
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
	"fmt"
	"strings"
)

//Error is the interface for errors that all the ffp4mof subpackages implement.
//In addition to the regular error functionality, it reports whether the error is
//critical, and keeps a "decoration" trail of the functions the error went through.
type Error interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//CError is the concrete error type of the library.
type CError struct {
	msg  string
	deco []string
}

//NewError builds a CError decorated with the caller's name.
func NewError(caller, format string, a ...interface{}) *CError {
	err := new(CError)
	err.msg = fmt.Sprintf(format, a...)
	err.Decorate(caller)
	return err
}

//Error returns the error message, prefixed with the decoration trail, if any.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(err.deco, "/"), err.msg)
}

//Decorate adds dec to the decoration trail of the error and returns the
//resulting trail. Given an empty string, it just returns the current trail.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored. All CError
//errors are critical.
func (err *CError) Critical() bool { return true }

//errDecorate asserts that err implements Error, decorates it with the caller's
//name and returns it. Errors from outside the library get wrapped in a CError.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return NewError(caller, "%s", err.Error())
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It does satisfy the error interface,
//but for returned errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilStructure    = PanicMsg("ffp4mof: nil or empty Structure")
	ErrNilLattice      = PanicMsg("ffp4mof: nil Lattice")
	ErrSiteOutOfRange  = PanicMsg("ffp4mof: site index out of range")
	ErrInconsistentDim = PanicMsg("ffp4mof: dimension mismatch")
)
