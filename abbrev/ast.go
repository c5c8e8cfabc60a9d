/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package abbrev parses HTML abbreviations into an expression tree. The
// grammar covers elements with id/class/attribute/text shorthand, child (>)
// and sibling (+) operators, grouping, multiplication with numbering
// directives, alias lookup, and lorem placeholders.
package abbrev

// Expr is a node in the abbreviation tree.
type Expr interface {
	expr()
}

// List is a sibling sequence expanded to newline-joined output. It is
// produced by multiplication.
type List struct {
	Items []Expr
}

// Sibling joins two expressions with A before B.
type Sibling struct {
	Left  Expr
	Right Expr
}

// ParentChild nests Child's output inside Parent. Parent is usually a Tag;
// a group parent (a List or Sibling) receives the child under each item. A
// multiplied parent does not appear here: the parser builds a List of
// ParentChild nodes instead, one per clone.
type ParentChild struct {
	Parent Expr
	Child  Expr
}

// Prop is one attribute from a [..] block. The value keeps its numbering
// directives so each clone can substitute its own index.
type Prop struct {
	Key   string
	Value Parts
}

// Tag is a single element.
type Tag struct {
	Name    Parts
	HasBody bool
	ID      Parts
	Classes []Parts
	Props   []Prop
	Text    Parts
}

// Text is free text from a {..} block.
type Text struct {
	Content Parts
}

// Lorem is a lorem/ipsum placeholder expanding to N generated words.
type Lorem struct {
	Words int
}

func (*List) expr()        {}
func (*Sibling) expr()     {}
func (*ParentChild) expr() {}
func (*Tag) expr()         {}
func (*Text) expr()        {}
func (*Lorem) expr()       {}

// Instantiate deep-copies e, substituting clone index i of n into every
// numbering directive. Literal parts are shared; they are never mutated.
func Instantiate(e Expr, i, n int) Expr {
	switch v := e.(type) {
	case *List:
		items := make([]Expr, len(v.Items))
		for j, item := range v.Items {
			items[j] = Instantiate(item, i, n)
		}
		return &List{Items: items}
	case *Sibling:
		return &Sibling{
			Left:  Instantiate(v.Left, i, n),
			Right: Instantiate(v.Right, i, n),
		}
	case *ParentChild:
		return &ParentChild{
			Parent: Instantiate(v.Parent, i, n),
			Child:  Instantiate(v.Child, i, n),
		}
	case *Tag:
		t := &Tag{
			Name:    v.Name.Instantiate(i, n),
			HasBody: v.HasBody,
			ID:      v.ID.Instantiate(i, n),
			Text:    v.Text.Instantiate(i, n),
		}
		if v.Classes != nil {
			t.Classes = make([]Parts, len(v.Classes))
			for j, c := range v.Classes {
				t.Classes[j] = c.Instantiate(i, n)
			}
		}
		if v.Props != nil {
			t.Props = make([]Prop, len(v.Props))
			for j, p := range v.Props {
				t.Props[j] = Prop{Key: p.Key, Value: p.Value.Instantiate(i, n)}
			}
		}
		return t
	case *Text:
		return &Text{Content: v.Content.Instantiate(i, n)}
	case *Lorem:
		return &Lorem{Words: v.Words}
	}
	return e
}

// clone deep-copies e without touching numbering directives. Alias subtrees
// are cached after their first parse; callers merge onto a clone so the
// cached tree stays pristine.
func clone(e Expr) Expr {
	switch v := e.(type) {
	case *List:
		items := make([]Expr, len(v.Items))
		for j, item := range v.Items {
			items[j] = clone(item)
		}
		return &List{Items: items}
	case *Sibling:
		return &Sibling{Left: clone(v.Left), Right: clone(v.Right)}
	case *ParentChild:
		return &ParentChild{Parent: clone(v.Parent), Child: clone(v.Child)}
	case *Tag:
		t := &Tag{
			Name:    v.Name,
			HasBody: v.HasBody,
			ID:      v.ID,
			Text:    v.Text,
		}
		t.Classes = append([]Parts(nil), v.Classes...)
		t.Props = append([]Prop(nil), v.Props...)
		return t
	case *Text:
		return &Text{Content: v.Content}
	case *Lorem:
		return &Lorem{Words: v.Words}
	}
	return e
}

// FirstTag returns the first tag in e in document order, or nil. Alias
// merging targets this node.
func FirstTag(e Expr) *Tag {
	switch v := e.(type) {
	case *Tag:
		return v
	case *List:
		for _, item := range v.Items {
			if t := FirstTag(item); t != nil {
				return t
			}
		}
	case *Sibling:
		if t := FirstTag(v.Left); t != nil {
			return t
		}
		return FirstTag(v.Right)
	case *ParentChild:
		if t := FirstTag(v.Parent); t != nil {
			return t
		}
		return FirstTag(v.Child)
	}
	return nil
}
