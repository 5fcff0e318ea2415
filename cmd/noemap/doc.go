// 13 Oct 2026
/*
Noemap reads two conformations of a protein and writes a table of the
distances between labelled methyl carbons (valine CG1 and CG2, leucine
CD1 and CD2, isoleucine CD1). Pairs where the first residue number is
not bigger than the second come from the first structure. The others
come from the second. Plotted as a heat map, the upper triangle is one
conformation and the lower triangle the other.

Each distance gets an NOE label:
	[0, 2.5)    strong
	[2.5, 3.5)  medium
	[3.5, 5)    weak
	[5, 10)     very weak
	10 and up   none
With -l, very weak goes out to 15.

Usage:
	noemap [flags] struct_a struct_b

The flags are:
	-a chain
		chain to use from struct_a. Default A
	-b chain
		chain to use from struct_b. Default A
	-d filename
		also write the table of distance differences, a - b
	-l
		long range. The very weak class ends at 15 instead of 10
	-log filename
		write progress information. "stdout" for standard output
	-m model
		model number, counting from zero
	-o filename
		output file instead of standard output
	-s
		skip pairs which are missing from the structure they should
		come from, instead of stopping
	-t
		strict tie rule. Pairs within one residue come from struct_b
	-w
		struct_a and struct_b are four letter codes to be downloaded

The output is csv with columns atom_id_1, atom_id_2, distance,
proximity_label and source. Source says which structure the row came
from, a or b. Atom ids look like 12-CD1.

If a selected residue is missing one of its methyl carbons, we stop.
*/
package main
