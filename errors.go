/*
 * errors.go, part of goasd.
 *
 * Copyright 2026 The goasd authors.
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
 */

package asd

import (
	"fmt"
	"strings"
)

//Error is the general error type of goasd. It satisfies Decorator.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//NewError returns a critical error with the given message, decorated with caller.
func NewError(message, caller string) *Error {
	return &Error{message: message, deco: []string{caller}, critical: true}
}

func (E *Error) Error() string {
	if len(E.deco) == 0 {
		return "goasd: " + E.message
	}
	return fmt.Sprintf("goasd: %s (%s)", E.message, strings.Join(E.deco, " < "))
}

//Decorate adds deco to the error's decoration slice, unless it is empty,
//and returns the slice.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical returns true if the error is critical, false otherwise.
func (E *Error) Critical() bool { return E.critical }

//ErrDecorate decorates err with caller, if err implements Decorator,
//and returns it. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if d, ok := err.(Decorator); ok {
		d.Decorate(caller)
	}
	return err
}
