package newick

var Statements = statements
