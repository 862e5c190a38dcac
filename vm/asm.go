package vm

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mincode/rvm/objects"
)

// Assemble parses a textual instruction listing — the format Disassemble's
// code section produces — into a Func. It exists to let the disassembler be
// exercised and tested without a FuncCtx: a hand-written or previously
// dumped listing is enough. Only the func: header and code: section are
// understood; local_zeros/up_pointers sections, if present, are skipped.
func Assemble(data []byte) (*Func, error) {
	a := asm{s: bufio.NewScanner(bytes.NewReader(data))}
	fields := a.next()
	a.header(fields)
	fields = a.next()
	for len(fields) > 0 && !asmSections[fields[0]] {
		fields = a.next() // skip any section this minimal assembler doesn't model
	}
	for len(fields) > 0 {
		switch fields[0] {
		case "code:":
			fields = a.code()
		default:
			fields = a.next()
		}
	}
	if a.err != nil {
		return nil, a.err
	}
	return &Func{
		Key:              objects.FunctionIndex(a.key),
		Code:             a.code_,
		LocalAlloc:       a.locals,
		MaxRegisterCount: a.maxRegs,
	}, nil
}

var asmSections = map[string]bool{
	"func:":             true,
	"local_zeros:":      true,
	"up_pointers:":       true,
	"code:":             true,
	"stack_temp_types:": true,
}

type asm struct {
	s   *bufio.Scanner
	err error

	key     int32
	locals  int32
	maxRegs int32
	code_   []Instruction
}

func (a *asm) header(fields []string) {
	if a.err != nil {
		return
	}
	if len(fields) == 0 || fields[0] != "func:" {
		a.err = fmt.Errorf("rvm/vm: asm: expected func: header, got %q", strings.Join(fields, " "))
		return
	}
	for _, f := range fields[1:] {
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 {
			continue
		}
		n, err := strconv.ParseInt(kv[1], 10, 32)
		if err != nil {
			a.err = fmt.Errorf("rvm/vm: asm: invalid %s value %q: %w", kv[0], kv[1], err)
			return
		}
		switch kv[0] {
		case "key":
			a.key = int32(n)
		case "locals":
			a.locals = int32(n)
		case "max_registers":
			a.maxRegs = int32(n)
		}
	}
}

// code parses the code: section, returning the fields of the line that
// ended it (the next section header, or nil at EOF).
func (a *asm) code() []string {
	var fields []string
	for fields = a.next(); a.err == nil && len(fields) > 0 && !asmSections[fields[0]]; fields = a.next() {
		// "<idx> OPNAME d=<n> s0=<n> s1=<n> [# position]"
		rest := fields[1:]
		if len(rest) == 0 {
			a.err = fmt.Errorf("rvm/vm: asm: empty code line")
			return fields
		}
		op, ok := reverseOpcodeLookup[strings.ToUpper(rest[0])]
		if !ok {
			a.err = fmt.Errorf("rvm/vm: asm: unknown opcode %q", rest[0])
			return fields
		}
		inst := Instruction{Op0: op}
		for _, operand := range rest[1:] {
			if strings.HasPrefix(operand, "#") {
				break
			}
			kv := strings.SplitN(operand, "=", 2)
			if len(kv) != 2 {
				continue
			}
			n, err := strconv.ParseInt(kv[1], 10, 32)
			if err != nil {
				a.err = fmt.Errorf("rvm/vm: asm: invalid operand %q: %w", operand, err)
				return fields
			}
			switch kv[0] {
			case "d":
				inst.D = int32(n)
			case "s0":
				inst.S0 = int32(n)
			case "s1":
				inst.S1 = int32(n)
			}
		}
		a.code_ = append(a.code_, inst)
	}
	return fields
}

// next returns the whitespace-split fields of the next non-empty,
// non-comment-only line.
func (a *asm) next() []string {
	if a.err != nil {
		return nil
	}
	for a.s.Scan() {
		line := a.s.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		return fields
	}
	a.err = a.s.Err()
	return nil
}

var reverseOpcodeLookup = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeNames))
	for op, name := range opcodeNames {
		if name != "" {
			m[name] = Opcode(op)
		}
	}
	return m
}()
