/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package abbrev

import (
	"errors"
	"fmt"
	"sync"
)

// aliasCache memoises parsed alias expansions keyed by the expansion source
// string. The parsed tree for a given source is semantically unique, so a
// racing double parse is harmless; entries are never invalidated.
var aliasCache sync.Map // string -> Expr

// expandAlias parses an alias expansion (cached), then merges the calling
// tag's shorthand onto the first tag of the expanded subtree.
func (p *Parser) expandAlias(value string, caller *Tag, depth int) (Expr, error) {
	if depth >= maxAliasDepth {
		return nil, errors.New("alias expansion too deep")
	}

	var ast Expr
	if cached, ok := aliasCache.Load(value); ok {
		ast = cached.(Expr)
	} else {
		parsed, rest, err := p.subexpr(value, depth+1)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", value, err)
		}
		if rest != "" {
			return nil, fmt.Errorf("alias %q: unexpected %q", value, rest)
		}
		aliasCache.Store(value, parsed)
		ast = parsed
	}

	merged := clone(ast)
	if first := FirstTag(merged); first != nil {
		mergeTag(first, caller)
	}
	return merged, nil
}

// mergeTag folds the caller's shorthand into the alias target: id and text
// override, classes and props union. Class union compares resolved strings;
// prop union is by key with the caller winning.
func mergeTag(dst, src *Tag) {
	if src.ID != nil {
		dst.ID = src.ID
	}
	if src.Text != nil {
		dst.Text = src.Text
	}
	if !src.HasBody {
		dst.HasBody = false
	}

	for _, c := range src.Classes {
		found := false
		for _, existing := range dst.Classes {
			if existing.String() == c.String() {
				found = true
				break
			}
		}
		if !found {
			dst.Classes = append(dst.Classes, c)
		}
	}

	for _, prop := range src.Props {
		replaced := false
		for i, existing := range dst.Props {
			if existing.Key == prop.Key {
				dst.Props[i] = prop
				replaced = true
				break
			}
		}
		if !replaced {
			dst.Props = append(dst.Props, prop)
		}
	}
}
