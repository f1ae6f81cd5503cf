package quantity_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const quantityPath = "github.com/aretw0/quanta/pkg/quantity"

// pkgImporter resolves imports from already type-checked packages.
type pkgImporter map[string]*types.Package

func (m pkgImporter) Import(path string) (*types.Package, error) {
	if p, ok := m[path]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("package %s not available", path)
}

func loadImporter(t *testing.T) pkgImporter {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, quantityPath)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	require.Empty(t, pkgs[0].Errors)

	imp := pkgImporter{quantityPath: pkgs[0].Types}
	// Take dimension from quantity's own imports so marker types are identical.
	for _, dep := range pkgs[0].Types.Imports() {
		imp[dep.Path()] = dep
	}
	return imp
}

func typeCheck(imp pkgImporter, body string) error {
	src := fmt.Sprintf(`package snippet

import (
	"github.com/aretw0/quanta/pkg/dimension"
	"github.com/aretw0/quanta/pkg/quantity"
)

var (
	length = quantity.New[dimension.Length](1)
	mass   = quantity.New[dimension.Mass](1)
	speed  = quantity.New[dimension.Speed](1)
)

func snippet() {
	%s
}
`, body)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "snippet.go", src, 0)
	if err != nil {
		return err
	}
	conf := types.Config{Importer: imp}
	_, err = conf.Check("snippet", fset, []*ast.File{f}, nil)
	return err
}

func TestMixedDimensionsDoNotTypeCheck(t *testing.T) {
	imp := loadImporter(t)

	accepted := []string{
		`_ = length.Add(length)`,
		`_ = length.Less(length)`,
		`_ = length.Convert(length)`,
		`_ = quantity.Product[dimension.Area](length, length)`,
		`_ = quantity.New[dimension.Torque](1).Equal(quantity.New[dimension.Work](1))`,
		`var l quantity.Length = length; _ = l`,
	}
	for _, body := range accepted {
		t.Run("accepts "+body, func(t *testing.T) {
			assert.NoError(t, typeCheck(imp, body))
		})
	}

	rejected := []string{
		`_ = length.Add(mass)`,
		`_ = length.Sub(mass)`,
		`length.AddAssign(mass)`,
		`_ = length.Less(mass)`,
		`_ = length.GreaterEq(speed)`,
		`_ = length.Equal(speed)`,
		`_ = length.Compare(mass)`,
		`_ = length.Convert(mass)`,
		`_ = quantity.Sum(length, mass)`,
		`var a quantity.Area = length; _ = a`,
		`_ = length == mass`,
	}
	for _, body := range rejected {
		t.Run("rejects "+body, func(t *testing.T) {
			assert.Error(t, typeCheck(imp, body))
		})
	}
}
