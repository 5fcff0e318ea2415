// 13 Oct 2026
/*
Fretmap compares the alpha carbon distances of two conformations of a
protein. It writes a table with both distances and the change,
a - b, for every pair of residues found in both. Residues are named by
number.

Given a Förster distance with -r, it also writes the FRET efficiency
of each pair in both conformations,
	E = 1 / (1 + (r / r0)^6)
and the change in E. With -e, the efficiency table is spliced. E of the
first structure is written above the diagonal, the second below.

Usage:
	fretmap [flags] struct_a struct_b

The flags are:
	-a chain, -b chain
		chains to use, default A
	-abs
		write the size of the change, not a - b
	-c cutoff
		only write pairs, once each, whose distance changes by more than
		cutoff
	-curve i,j
		for the pair of residues i and j, write the efficiency in both
		structures as r0 goes from -r0lo to -r0hi in steps of -r0step
		(default 20 to 80 by 1). This shows which dye pair would see the
		change best
	-curvefile filename
		curve goes here. Default standard output
	-e
		splice the efficiency table
	-f filename
		efficiency table goes here. Default standard output
	-m model
		model number, counting from zero
	-o filename
		delta table goes here. Default standard output
	-r r0
		Förster distance in Angstrom
	-sasa cutoff
		drop residues whose b-factor is below cutoff. Put relative
		accessibility in the b-factor column to keep only surface
		residues
	-strict
		stop if a pair turns up twice
	-same
		with -strict, stop if the structures do not have the same residues
	-w
		arguments are four letter codes to be downloaded

Output is csv. Columns are atom_id_1, atom_id_2, distance_a,
distance_b, delta_distance and for efficiencies E_fret_a, E_fret_b,
delta_E_fret. The curve has r0, E_fret_a, E_fret_b and delta_E_fret.
*/
package main
