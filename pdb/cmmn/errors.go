package cmmn

import (
	"fmt"
	"strconv"
)

// MissingAtomError says a residue lacks an atom the selection asked for.
type MissingAtomError struct {
	ResNum   int
	ResName  string
	AtomName string
}

func (e *MissingAtomError) Error() string {
	return "residue " + e.ResName + " " + strconv.Itoa(e.ResNum) + " has no atom " + e.AtomName
}

// ChainNotFoundError is returned when a model/chain is not in a structure.
type ChainNotFoundError struct {
	Structure string
	Model     int
	Chain     string
}

func (e *ChainNotFoundError) Error() string {
	return fmt.Sprintf("%s/%d/%s not in structure", e.Structure, e.Model, e.Chain)
}

// AtomIDError means an atom id does not start with a residue number.
type AtomIDError struct{ ID AtomID }

func (e *AtomIDError) Error() string {
	return `atom id "` + string(e.ID) + `" does not start with a residue number`
}

// DuplicateAtomError is returned when an atom id appears twice in one
// coordinate table.
type DuplicateAtomError struct{ ID AtomID }

func (e *DuplicateAtomError) Error() string {
	return `duplicate atom id "` + string(e.ID) + `"`
}
