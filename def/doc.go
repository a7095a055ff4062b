/*
	The `def` package contains the core definitions shared by every other
	part of fisca: calendar instants and periods, the situation payload
	(the input to a calculation), and variable descriptors.

	Everything here is plain data plus validation.  Computation lives in
	the `engine` package; parameter storage lives in `params`; the actual
	legislation formulas live in `rules`.

	Serialization: the canonical wire format is JSON, but every parse
	function in this package also accepts yaml (with tabs tolerated in
	indentation), because humans writing situation files by hand deserve
	nice things.
*/
package def
