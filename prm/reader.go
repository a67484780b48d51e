/*
 * reader.go, part of emc2lt
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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

package prm

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Section keywords
const (
	DefineSection      = "DEFINE"
	MassSection        = "MASS"
	NonbondSection     = "NONBOND"
	BondSection        = "BOND"
	AngleSection       = "ANGLE"
	TorsionSection     = "TORSION"
	ImproperSection    = "IMPROP"
	EquivalenceSection = "EQUIVALENCE"
	endSection         = "END"
)

// StringReader is what Read needs from its source. *bufio.Reader
// implements it.
type StringReader interface {
	ReadString(byte) (string, error)
}

// File contains the data of one prm file. It is not modified after being read.
type File struct {
	Name   string
	Define *Define
	//rows of each data section, keyed by section keyword. Sections
	//appearing more than once in the file are concatenated.
	sections map[string][][]string
}

// Rows returns the data rows of the given section, in file order.
// The returned slice must not be modified.
func (F *File) Rows(section string) [][]string {
	return F.sections[section]
}

// Masses, Nonbonds, etc. are shortcuts for Rows with the corresponding section.
func (F *File) Masses() [][]string       { return F.Rows(MassSection) }
func (F *File) Nonbonds() [][]string     { return F.Rows(NonbondSection) }
func (F *File) Bonds() [][]string        { return F.Rows(BondSection) }
func (F *File) Angles() [][]string       { return F.Rows(AngleSection) }
func (F *File) Torsions() [][]string     { return F.Rows(TorsionSection) }
func (F *File) Impropers() [][]string    { return F.Rows(ImproperSection) }
func (F *File) Equivalences() [][]string { return F.Rows(EquivalenceSection) }

// marker returns the section keyword if line is an "ITEM <KEYWORD>" line, and
// whether it was one.
func marker(line string) (string, bool) {
	f := strings.Fields(line)
	if len(f) != 2 || f[0] != "ITEM" {
		return "", false
	}
	return f[1], true
}

// Read reads a prm file from r. name is only used to identify the file
// in errors and later diagnostics. Read only fails on I/O errors.
func Read(r io.Reader, name string) (*File, error) {
	var sr StringReader
	if s, ok := r.(StringReader); ok {
		sr = s
	} else {
		sr = bufio.NewReader(r)
	}
	F := &File{Name: name, Define: new(Define), sections: make(map[string][][]string)}
	current := "" //the section we are in. Empty means we are outside all sections.
	var err error
	var s string
	for {
		s, err = sr.ReadString('\n')
		if s != "" {
			current = F.readLine(s, current)
		}
		if err != nil {
			break
		}
	}
	if !errors.Is(err, io.EOF) {
		return nil, &Error{ReadError + ": " + err.Error(), name, []string{"Read"}, true}
	}
	return F, nil
}

// readLine processes one line of the file given the current section, and returns
// the section for the next line.
func (F *File) readLine(s, current string) string {
	if k, ok := marker(s); ok {
		if k == endSection {
			return ""
		}
		return k
	}
	switch current {
	case "":
		return current
	case DefineSection:
		F.Define.readLine(s)
		return current
	}
	if strings.HasPrefix(s, "#") {
		return current
	}
	row := strings.Fields(s)
	if len(row) == 0 {
		return current
	}
	F.sections[current] = append(F.sections[current], row)
	return current
}
