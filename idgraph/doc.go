// Package idgraph is the identification graph: a labelled undirected graph
// whose vertices are proteins, protein-groups, peptide-groups and PSMs
// (peptide-spectrum matches), carrying weak references to the caller's
// protein/peptide hit data. Edges exist only between vertices of differing
// Which, and which values are strictly ordered (protein < protein-group <
// peptide-group < PSM) so that "inputs" to a vertex are simply its
// neighbors with a strictly lower Which.
//
// The graph is the caller's data: epifany builds one per orchestration call
// via a Builder, decomposes it into connected components, and hands each
// component's subgraph to the per-CC inference functor. idgraph itself
// never touches a file format or a database; building the graph from real
// protein/peptide identification data is an external collaborator's job
// (see Builder). This package supplies the graph representation, the
// connected-component decomposition, and a SimpleBuilder usable wherever a
// caller already has the graph assembled in memory.
package idgraph
