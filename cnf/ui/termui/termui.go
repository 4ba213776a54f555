// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'cnf.cli'.
func trace() tracing.Trace {
	return tracing.Select("cnf.cli")
}

// Formatter writes items to the terminal. It returns false for items it does
// not know how to display.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter displays strings, errors and tables.
type DefaultFormatter struct{}

func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		_, err := fmt.Fprintf(w, "▶ %s\n", t)
		return err == nil, err
	case error:
		_, err := fmt.Fprintf(w, "▶ error: %s\n", t.Error())
		return err == nil, err
	case table.Writer:
		if t == nil {
			_, err := io.WriteString(w, "▶ (empty table)\n")
			return err == nil, err
		}
		_, err := fmt.Fprintf(w, "%s\n", t.Render())
		return err == nil, err
	}
	trace().Debugf("no format for item of type %T", item)
	_, err := fmt.Fprintf(w, "▶ object of type %T\n", item)
	return false, err
}
