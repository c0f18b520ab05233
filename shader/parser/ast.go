// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parser builds a typed AST from a shader token stream.
// Nodes live in a single arena (a slice of Node);
// cross-references between nodes are NodeID indices rather than
// pointers, so the tree is relocatable and freed in one step by
// discarding the arena.
package parser

// NodeKind tags the variant an arena slot holds.
type NodeKind int

const (
	NStatementBlock NodeKind = iota
	NStatementExpression
	NIf
	NWhile
	NDoWhile
	NFor
	NSwitch
	NCase
	NDefault
	NReturn
	NBreak
	NContinue
	NDiscard
	NBinary
	NUnary
	NTernary
	NFunctionCall
	NFunctionDeclaration
	NVariableDeclaration
	NVariable
	NStruct
	NTexture
	NCast
	NGroup
	NSwizzle
	NSVSemantic
	NInteger
	NNumber
	NBoolean
	NExpressionList
)

// NodeID is an index into Arena.Nodes. The zero value is reserved as
// "absent" (arena slot 0 is always a sentinel), so an optional
// reference is a typed zero value rather than a nil pointer.
type NodeID int

const NoNode NodeID = 0

// Node is one arena slot. Only the fields relevant to Kind are
// populated; this mirrors a tagged union using a flat struct instead
// of an interface, which keeps the arena a single contiguous slice.
type Node struct {
	Kind NodeKind
	Line int

	// StatementBlock
	Statements []NodeID

	// StatementExpression, Return (optional value), Cast (params),
	// FunctionCall (params), Group, ExpressionList (continuation)
	Expr NodeID
	Next NodeID
	Args []NodeID

	// If/While/DoWhile/For
	Cond NodeID
	Then NodeID
	Else NodeID
	Init NodeID
	Post NodeID

	// Switch/Case
	Cases []NodeID

	// Binary/Unary/Ternary
	Op string
	L  NodeID
	R  NodeID
	A  NodeID
	B  NodeID

	// FunctionCall/FunctionDeclaration/VariableDeclaration/Variable
	FnID  int
	VarID int
	Type  string
	Block NodeID

	// Struct/Texture
	StructID int
	TexID    int

	// Cast
	CastType string

	// Swizzle
	Mask string

	// SVSemantic
	SVKind string

	// Integer/Number/Boolean literals
	IntValue  int64
	NumValue  float64
	BoolValue bool
}

// Arena owns every AST node for one parsed shader file.
type Arena struct {
	Nodes []Node
}

// NewArena returns an Arena with its sentinel zero node already
// populated, so NodeID(0) reads back as a harmless empty block rather
// than an uninitialized zero value.
func NewArena() *Arena {
	return &Arena{Nodes: []Node{{Kind: NStatementBlock}}}
}

func (a *Arena) add(n Node) NodeID {
	id := NodeID(len(a.Nodes))
	a.Nodes = append(a.Nodes, n)
	return id
}

func (a *Arena) Get(id NodeID) *Node { return &a.Nodes[id] }
