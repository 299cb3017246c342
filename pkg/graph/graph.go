// Package graph holds the directed multigraph of accounts built from scanned
// transactions. Nodes live in an arena addressed by NodeID; an index map
// resolves an account to its node.
package graph

import (
	"txgraph/pkg/models"

	"github.com/holiman/uint256"
)

// NodeID indexes the node arena.
type NodeID int

// EdgeID indexes the edge arena.
type EdgeID int

// Edge is one transaction between two accounts. Parallel edges are kept.
type Edge struct {
	From   NodeID
	To     NodeID
	Hash   string
	Value  *uint256.Int
	Record int // index into the record sequence the graph was built from
}

// Graph is a directed multigraph over accounts.
type Graph struct {
	nodes []models.Account
	edges []Edge
	index map[models.Account]NodeID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[models.Account]NodeID)}
}

// Build derives a graph from a record sequence: one node per distinct
// account, one edge per record, in record order.
func Build(records []models.TransactionRecord) *Graph {
	g := New()
	for i, rec := range records {
		from := g.AddNode(rec.From)
		to := g.AddNode(rec.To)
		g.AddEdge(from, to, rec.Hash, rec.Value, i)
	}
	return g
}

// AddNode returns the node for the account, creating it on first sight.
func (g *Graph) AddNode(a models.Account) NodeID {
	a = a.Normalize()
	if id, ok := g.index[a]; ok {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, a)
	g.index[a] = id
	return id
}

// AddEdge appends an edge. Both endpoints must come from AddNode.
func (g *Graph) AddEdge(from, to NodeID, hash string, value *uint256.Int, record int) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{From: from, To: to, Hash: hash, Value: value, Record: record})
	return id
}

// Lookup finds the node for an account without creating it.
func (g *Graph) Lookup(a models.Account) (NodeID, bool) {
	id, ok := g.index[a.Normalize()]
	return id, ok
}

func (g *Graph) Node(id NodeID) models.Account {
	return g.nodes[id]
}

func (g *Graph) Edge(id EdgeID) Edge {
	return g.edges[id]
}

// Edges returns the edge arena in insertion order. The slice must not be modified.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Endpoints resolves an edge to the accounts it connects.
func (g *Graph) Endpoints(e Edge) (from, to models.Account) {
	return g.nodes[e.From], g.nodes[e.To]
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// OutDegree counts the edges leaving a node.
func (g *Graph) OutDegree(id NodeID) int {
	n := 0
	for _, e := range g.edges {
		if e.From == id {
			n++
		}
	}
	return n
}

// InDegree counts the edges entering a node.
func (g *Graph) InDegree(id NodeID) int {
	n := 0
	for _, e := range g.edges {
		if e.To == id {
			n++
		}
	}
	return n
}
