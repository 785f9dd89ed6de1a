// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/miniconf-go/miniconf/value"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// InvalidHclError occurs if the underlying io.Reader contains invalid HCL.
type InvalidHclError struct {
	Diagnostics hcl.Diagnostics
}

// Error implements the error interface.
func (e InvalidHclError) Error() string {
	return fmt.Sprintf("invalid hcl: %s", e.Diagnostics.Error())
}

// FromHcl parses an HCL document from the given io.Reader into a tree.
// Attributes become scalar leaves, blocks (and block labels) become
// nested nodes. HCL is a read only format: there is no matching writer.
func FromHcl(filename string, r io.Reader) (Map, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f, diags := hclparse.NewParser().ParseHCL(b, filename)
	if diags.HasErrors() {
		return nil, InvalidHclError{Diagnostics: diags}
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected hcl body type %T", f.Body)
	}
	return hclBody(body, nil)
}

func hclBody(body *hclsyntax.Body, chain []string) (Map, error) {
	m := make(Map)
	for name, attr := range body.Attributes {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, InvalidHclError{Diagnostics: diags}
		}

		leaf, err := ctyNode(strings.Join(append(chain, name), "."), v)
		if err != nil {
			return nil, err
		}
		m[name] = leaf
	}

	for _, blk := range body.Blocks {
		sub, err := hclBody(blk.Body, append(chain, blk.Type))
		if err != nil {
			return nil, err
		}

		// Labeled blocks nest one level per label under the block type.
		for i := len(blk.Labels) - 1; i >= 0; i-- {
			sub = Map{blk.Labels[i]: sub}
		}
		m[blk.Type] = sub
	}
	return m, nil
}

// ctyNode converts a cty.Value into a tree node: scalars become
// value.Value leaves and objects recurse into nested maps.
func ctyNode(key string, v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return value.Unknown(), nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return value.String(v.AsString()), nil
	case ty == cty.Bool:
		return value.Bool(v.True()), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return value.Int(i), nil
		}
		f, _ := bf.Float64()
		return value.Number(f), nil
	case ty.IsObjectType() || ty.IsMapType():
		m := make(Map)
		it := v.ElementIterator()
		for it.Next() {
			k, ev := it.Element()
			node, err := ctyNode(key+"."+k.AsString(), ev)
			if err != nil {
				return nil, err
			}
			m[k.AsString()] = node
		}
		return m, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		return nil, ArrayNodeError{Key: key}
	default:
		return nil, UnsupportedScalarError{Key: key, Value: ty.FriendlyName()}
	}
}
