package convert

import "github.com/TravisQBrown/citrine/internal/expr"

// Value is the payload a resolved leaf can carry: an SI symbol for the
// symbol tree or an SI factor for the factor tree.
type Value interface {
	~string | ~float64
}

// Resolved mirrors an expr.Node after unit resolution. It is either a *Leaf
// or a *Branch.
type Resolved[T Value] interface {
	resolved(T)
}

// Leaf is a resolved unit.
type Leaf[T Value] struct {
	Value T
}

// Branch is a resolved group with the operator layout of its source group.
type Branch[T Value] struct {
	Operands  []Resolved[T]
	Operators []expr.Operator
}

func (*Leaf[T]) resolved(T)   {}
func (*Branch[T]) resolved(T) {}
