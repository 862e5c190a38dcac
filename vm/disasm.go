package vm

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"
)

// Disassemble writes a finalized Func to a human-readable textual form, one
// section per field of the record. It never fails: a finalized Func is
// already a closed, self-consistent value, so there is nothing left to
// validate at this point.
func Disassemble(f *Func) string {
	d := dasm{buf: new(bytes.Buffer)}
	d.write(f)
	return d.buf.String()
}

type dasm struct {
	buf *bytes.Buffer
}

func (d *dasm) write(f *Func) {
	d.writef("func: key=%d locals=%d max_registers=%d\n", f.Key, f.LocalAlloc, f.MaxRegisterCount)

	if len(f.LocalZeros) > 0 {
		d.writef("\tlocal_zeros:\n")
		for i, v := range f.LocalZeros {
			d.writef("\t\t%03d\t%s\n", i, v)
		}
	}

	if len(f.UpPointers) > 0 {
		d.writef("\tup_pointers:\n")
		for i, uv := range f.UpPointers {
			origin := "up_value"
			if uv.FromParentLocal {
				origin = "local"
			}
			d.writef("\t\t%03d\t%s[%d]\n", i, origin, uv.Index)
		}
	}

	if len(f.Code) > 0 {
		d.writef("\tcode:\n")
		for i, inst := range f.Code {
			d.writef("\t\t%03d\t%s", i, inst)
			if i < len(f.Positions) && f.Positions[i] != nil {
				d.writef("\t# %s", f.Positions[i])
			}
			d.writef("\n")
		}
	}

	if len(f.StackTempTypes) > 0 {
		// sorted for a stable, reviewable diff regardless of allocation order
		kinds := make(map[ValueType]int)
		for _, t := range f.StackTempTypes {
			kinds[t]++
		}
		types := make([]ValueType, 0, len(kinds))
		for t := range kinds {
			types = append(types, t)
		}
		slices.Sort(types)

		d.writef("\tstack_temp_types:\n")
		for _, t := range types {
			d.writef("\t\t%s\t# %d\n", t, kinds[t])
		}
	}
}

func (d *dasm) writef(format string, args ...any) {
	fmt.Fprintf(d.buf, format, args...)
}
