// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sanitizer

import (
	"fmt"
	"github.com/pkg/errors"
	"go/ast"
	"go/token"
)

func (s *Sanitizer) verifyDeclarationsAndStatements(astFile *ast.File) (err error) {
	for _, decl := range astFile.Decls {
		ast.Inspect(decl, func(node ast.Node) bool {
			if err != nil {
				return false
			}
			switch node := node.(type) {
			case *ast.ChanType:
				err = errors.New("channels not allowed")
				return false
			case *ast.GoStmt:
				err = errors.New("goroutines not allowed")
				return false
			case *ast.SelectStmt:
				err = errors.New("select not allowed")
				return false
			case *ast.UnaryExpr:
				if node.Op == token.ARROW {
					err = errors.New("receiving from channels not allowed")
					return false
				}
			case *ast.SendStmt:
				err = errors.New("sending to channels not allowed")
				return false
			case *ast.CallExpr:
				if selector, ok := node.Fun.(*ast.SelectorExpr); ok {
					pkg := fmt.Sprintf("%s", selector.X)
					f := selector.Sel.Name

					for _, blacklistedFunction := range s.config.FunctionBlacklist[pkg] {
						if f == blacklistedFunction {
							err = errors.Errorf("%s.%s not allowed", pkg, f)
							return false
						}
					}
				}
			}
			return true
		})
		if err != nil {
			return
		}
	}

	return
}
