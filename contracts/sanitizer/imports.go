// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sanitizer

import (
	"github.com/pkg/errors"
	"go/ast"
)

func (s *Sanitizer) verifyImports(astFile *ast.File) error {
	for _, importSpec := range astFile.Imports {
		if importSpec.Name != nil && importSpec.Name.Name == "_" {
			return errors.Errorf("blank import not allowed '%s'", importSpec.Path.Value)
		}
		if !s.config.ImportWhitelist[importSpec.Path.Value] {
			return errors.Errorf("import not allowed '%s'", importSpec.Path.Value)
		}
	}
	return nil
}
