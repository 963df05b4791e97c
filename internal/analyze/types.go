package analyze

import (
	"go/token"
	"go/types"

	"optbind/internal/diagnostic"
	"optbind/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "optbind/examples/basic"
	Name    string // e.g., "Options"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Contract describes an interface type that binds to command-line options.
type Contract struct {
	ID        TypeID
	PkgName   string // Package name (not path)
	Dir       string // Directory holding the package sources
	Doc       string // Doc comment text, directives removed
	Types     *types.Package
	Accessors []Accessor // Sorted by method name, matching reflect order
}

// Exported reports whether the contract type is exported.
func (c *Contract) Exported() bool {
	return token.IsExported(c.ID.Name)
}

// Accessor returns the accessor with the given method name.
func (c *Contract) Accessor(method string) (*Accessor, bool) {
	for i := range c.Accessors {
		if c.Accessors[i].Method == method {
			return &c.Accessors[i], true
		}
	}

	return nil, false
}

// Accessor describes one method of a contract.
type Accessor struct {
	Method      string             // Go method name
	Option      string             // Derived option name, without dashes
	Kind        primitive.KindEnum // Primitive kind of the result
	Flag        bool               // Result is bool or *bool
	Nullable    bool               // Result is a pointer
	Result      types.Type         // Declared result type
	Description string             // Doc comment text, directives removed
	DefaultFunc string             // Name of the default body function, if any
}

// PlainFlag reports whether the accessor returns the predeclared bool.
func (a *Accessor) PlainFlag() bool {
	return a.Flag && !a.Nullable && types.Identical(a.Result, types.Typ[types.Bool])
}

// Result holds the outcome of loading contracts.
type Result struct {
	Contracts   []*Contract
	Packages    map[string]*PackageInfo
	Diagnostics diagnostic.Diagnostics
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Source directory
}
