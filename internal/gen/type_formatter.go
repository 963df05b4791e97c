package gen

import (
	"go/types"
	"slices"
	"strings"

	"optbind/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// importSet collects the imports a generated file needs.
type importSet struct {
	self    *types.Package
	imports map[string]importSpec
}

func newImportSet(self *types.Package) *importSet {
	return &importSet{self: self, imports: make(map[string]importSpec)}
}

// add records pkgPath under name. The alias is omitted when it matches the
// last element of the path.
func (s *importSet) add(pkgPath, name string) {
	if pkgPath == "" {
		return
	}

	alias := name
	if alias == common.PkgAlias(pkgPath) {
		alias = ""
	}

	s.imports[pkgPath] = importSpec{Alias: alias, Path: pkgPath}
}

// qualifier renders package-qualified type names, recording every package
// other than the contract's own.
func (s *importSet) qualifier(pkg *types.Package) string {
	if s.self != nil && pkg.Path() == s.self.Path() {
		return ""
	}

	s.add(pkg.Path(), pkg.Name())

	return pkg.Name()
}

// typeString renders t as it is spelled inside the contract's package.
func (s *importSet) typeString(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// grouped returns the standard library imports and the rest, each ordered
// by path. Paths sharing a root element with the contract's package or with
// local are never standard library.
func (s *importSet) grouped(local ...string) (std, other []importSpec) {
	roots := make(map[string]bool)
	if s.self != nil {
		roots[pathRoot(s.self.Path())] = true
	}
	for _, p := range local {
		roots[pathRoot(p)] = true
	}

	for _, spec := range s.imports {
		root := pathRoot(spec.Path)
		if !strings.Contains(root, ".") && !roots[root] {
			std = append(std, spec)
			continue
		}
		other = append(other, spec)
	}

	byPath := func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	}
	slices.SortFunc(std, byPath)
	slices.SortFunc(other, byPath)

	return std, other
}

func pathRoot(path string) string {
	root, _, _ := strings.Cut(path, "/")

	return root
}
