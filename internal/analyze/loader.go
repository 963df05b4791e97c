package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"optbind/bind"
	"optbind/internal/common"
	"optbind/internal/diagnostic"
	"optbind/internal/match"
	"optbind/primitive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

const (
	directivePrefix   = "//optbind:"
	directiveContract = "contract"
	directiveDefault  = "default"
)

// Analyzer loads Go packages and extracts contracts.
type Analyzer struct {
	dir    string
	logger *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithDir sets the directory patterns are resolved in.
func WithDir(dir string) AnalyzerOption {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load loads the packages matching patterns and extracts the named
// interface types. With no names, every interface marked //optbind:contract
// is extracted. Problems with the contracts themselves are reported in
// Result.Diagnostics; the error is reserved for packages that cannot be
// loaded at all.
func (a *Analyzer) Load(patterns, names []string) (*Result, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %s", strings.Join(patterns, " "))
	}

	res := &Result{Packages: make(map[string]*PackageInfo)}

	// Errors in a package that parsed are tolerated: a stale or missing
	// generated file must not block regenerating it.
	var errs []error
	for _, pkg := range pkgs {
		loaded := pkg.Types != nil && len(pkg.Syntax) > 0
		for _, e := range pkg.Errors {
			if loaded {
				res.Diagnostics.AddWarning(diagnostic.CodeTypeError, e.Error(), pkg.PkgPath, "")
				continue
			}
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	found := make(map[string]bool, len(names))
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}

		dir := packageDir(pkg)
		res.Packages[pkg.PkgPath] = &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name, Dir: dir}
		a.logger.Debug("loaded package", slog.String("path", pkg.PkgPath), slog.String("dir", dir))

		decls := typeDecls(pkg)
		for _, name := range selectNames(pkg, decls, names) {
			found[name] = true

			obj, _ := pkg.Types.Scope().Lookup(name).(*types.TypeName)
			contract := a.analyzeContract(pkg, dir, obj, decls[name], &res.Diagnostics)
			if contract != nil {
				res.Contracts = append(res.Contracts, contract)
			}
		}
	}

	for _, name := range names {
		if found[name] {
			continue
		}
		var suggestions []string
		if best, ok := match.Closest(name, allTypeNames(pkgs), match.DefaultMinSimilarity); ok {
			suggestions = append(suggestions, best)
		}
		res.Diagnostics.AddError(diagnostic.CodeNotFound,
			fmt.Sprintf("no type %s in %s", name, strings.Join(patterns, " ")), name, "", suggestions...)
	}

	slices.SortFunc(res.Contracts, func(x, y *Contract) int {
		return strings.Compare(x.ID.String(), y.ID.String())
	})

	return res, nil
}

// typeDecl is the syntax behind a package-level type.
type typeDecl struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

func typeDecls(pkg *packages.Package) map[string]typeDecl {
	decls := make(map[string]typeDecl)

	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, s := range gd.Specs {
				spec := s.(*ast.TypeSpec)
				doc := spec.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				decls[spec.Name.Name] = typeDecl{spec: spec, doc: doc}
			}
		}
	}

	return decls
}

func selectNames(pkg *packages.Package, decls map[string]typeDecl, names []string) []string {
	if common.IsEmpty(names) {
		var marked []string
		for name, decl := range decls {
			if _, ok := decl.spec.Type.(*ast.InterfaceType); ok && hasDirective(decl.doc, directiveContract) {
				marked = append(marked, name)
			}
		}
		slices.Sort(marked)

		return marked
	}

	var selected []string
	for _, name := range names {
		if _, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
			selected = append(selected, name)
		}
	}

	return selected
}

func (a *Analyzer) analyzeContract(
	pkg *packages.Package,
	dir string,
	obj *types.TypeName,
	decl typeDecl,
	diags *diagnostic.Diagnostics,
) *Contract {
	id := TypeID{PkgPath: pkg.PkgPath, Name: obj.Name()}
	contractName := id.String()

	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		diags.AddError(diagnostic.CodeNotAContract,
			fmt.Sprintf("%s is a %s, not an interface", obj.Name(), kindOf(obj.Type().Underlying())), contractName, "")
		return nil
	}

	if named, ok := obj.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
		diags.AddError(diagnostic.CodeNotAContract, "generic interfaces cannot be contracts", contractName, "")
		return nil
	}

	if !iface.IsMethodSet() {
		diags.AddError(diagnostic.CodeNotAContract, "type constraints cannot be contracts", contractName, "")
		return nil
	}

	contract := &Contract{
		ID:      id,
		PkgName: pkg.Name,
		Dir:     dir,
		Doc:     describe(decl.doc),
		Types:   pkg.Types,
	}

	before := len(diags.Errors)
	methodDocs := methodComments(pkg)
	owners := make(map[string]string)

	for i := range iface.NumMethods() {
		method := iface.Method(i)

		acc, ok := analyzeAccessor(method, contractName, diags)
		if !ok {
			continue
		}

		if acc.Option == bind.HelpOption {
			diags.AddError(diagnostic.CodeReservedOption,
				fmt.Sprintf("--%s is reserved for the help flag", acc.Option), contractName, acc.Method)
			continue
		}

		if owner, dup := owners[acc.Option]; dup {
			diags.AddError(diagnostic.CodeDuplicateOption,
				fmt.Sprintf("--%s is also derived from %s", acc.Option, owner), contractName, acc.Method)
			continue
		}
		owners[acc.Option] = acc.Method

		// Embedded methods carry the comments of the interface declaring them.
		docs, found := methodDocs[method.Origin().Pos()]
		if !found {
			diags.AddWarning(diagnostic.CodeNoSource,
				fmt.Sprintf("%s is declared in %s; its comments and directives are not read",
					acc.Method, declaringPackage(method)), contractName, acc.Method)
		}
		acc.Description = describe(docs.doc)
		if acc.Description == "" {
			acc.Description = describe(docs.comment)
		}

		a.readDirectives(pkg, obj, &acc, docs.doc, contractName, diags)

		if acc.Description == "" {
			diags.AddInfo(diagnostic.CodeNoDescription,
				fmt.Sprintf("--%s has no description", acc.Option), contractName, acc.Method)
		}

		contract.Accessors = append(contract.Accessors, acc)
	}

	if len(diags.Errors) > before {
		return nil
	}

	slices.SortFunc(contract.Accessors, func(x, y Accessor) int {
		return strings.Compare(x.Method, y.Method)
	})

	a.logger.Debug("found contract",
		slog.String("contract", contractName),
		slog.Int("accessors", len(contract.Accessors)))

	return contract
}

func analyzeAccessor(method *types.Func, contractName string, diags *diagnostic.Diagnostics) (Accessor, bool) {
	sig := method.Type().(*types.Signature)
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		diags.AddError(diagnostic.CodeBadAccessor,
			fmt.Sprintf("accessors take no arguments and return one value, got %s", sig), contractName, method.Name())
		return Accessor{}, false
	}

	result := sig.Results().At(0).Type()

	kind, nullable, err := primitive.ClassifyType(result)
	switch {
	case errors.Is(err, primitive.ErrUnknown):
		diags.AddError(diagnostic.CodeUnknownPrimitive,
			fmt.Sprintf("%s has no command-line form", result), contractName, method.Name())
		return Accessor{}, false
	case err != nil:
		diags.AddError(diagnostic.CodeUnsupportedType,
			fmt.Sprintf("result type %s is not supported", result), contractName, method.Name())
		return Accessor{}, false
	}

	flag := kind == primitive.KindBool

	return Accessor{
		Method:   method.Name(),
		Option:   bind.OptionName(method.Name(), flag),
		Kind:     kind,
		Flag:     flag,
		Nullable: nullable,
		Result:   result,
	}, true
}

// readDirectives applies the //optbind: directives of an accessor comment.
func (a *Analyzer) readDirectives(
	pkg *packages.Package,
	contract *types.TypeName,
	acc *Accessor,
	doc *ast.CommentGroup,
	contractName string,
	diags *diagnostic.Diagnostics,
) {
	for _, d := range directives(doc) {
		switch d.name {
		case directiveDefault:
			if acc.Flag {
				diags.AddError(diagnostic.CodeFlagDefault,
					fmt.Sprintf("flag --%s cannot have a default body", acc.Option), contractName, acc.Method)
				continue
			}
			if d.arg == "" {
				diags.AddError(diagnostic.CodeBadDefault,
					"//optbind:default needs a function name", contractName, acc.Method)
				continue
			}
			if checkDefault(pkg, contract, acc, d.arg, contractName, diags) {
				acc.DefaultFunc = d.arg
			}
		default:
			diags.AddWarning(diagnostic.CodeUnknownDirective,
				fmt.Sprintf("ignoring //optbind:%s", d.name), contractName, acc.Method)
		}
	}
}

// checkDefault verifies that fn is declared as func(Contract) Result.
func checkDefault(
	pkg *packages.Package,
	contract *types.TypeName,
	acc *Accessor,
	fn string,
	contractName string,
	diags *diagnostic.Diagnostics,
) bool {
	want := fmt.Sprintf("func(%s) %s", contract.Name(), types.TypeString(acc.Result, types.RelativeTo(pkg.Types)))

	obj, ok := pkg.Types.Scope().Lookup(fn).(*types.Func)
	if !ok {
		var suggestions []string
		if best, found := match.Closest(fn, funcNames(pkg.Types), match.DefaultMinSimilarity); found {
			suggestions = append(suggestions, best)
		}
		diags.AddError(diagnostic.CodeBadDefault,
			fmt.Sprintf("no function %s in package %s", fn, pkg.Name), contractName, acc.Method, suggestions...)
		return false
	}

	sig := obj.Type().(*types.Signature)
	if sig.TypeParams().Len() != 0 ||
		sig.Variadic() ||
		sig.Params().Len() != 1 ||
		sig.Results().Len() != 1 ||
		!acceptsContract(sig.Params().At(0).Type(), contract.Type()) ||
		!types.Identical(sig.Results().At(0).Type(), acc.Result) {
		diags.AddError(diagnostic.CodeBadDefault,
			fmt.Sprintf("%s must be %s", fn, want), contractName, acc.Method)
		return false
	}

	return true
}

// acceptsContract reports whether a default body taking param can receive
// the live instance of contract. Interfaces the contract embeds qualify.
func acceptsContract(param, contract types.Type) bool {
	if types.Identical(param, contract) {
		return true
	}

	iface, ok := param.Underlying().(*types.Interface)

	return ok && types.Implements(contract, iface)
}

// methodDocs holds the comments attached to an interface method.
type methodDocs struct {
	doc     *ast.CommentGroup
	comment *ast.CommentGroup
}

// methodComments indexes the comments of every interface method declared
// in the package by the position of the method name.
func methodComments(pkg *packages.Package) map[token.Pos]methodDocs {
	out := make(map[token.Pos]methodDocs)

	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			it, ok := n.(*ast.InterfaceType)
			if !ok || it.Methods == nil {
				return true
			}

			for _, field := range it.Methods.List {
				for _, name := range field.Names {
					out[name.Pos()] = methodDocs{doc: field.Doc, comment: field.Comment}
				}
			}

			return true
		})
	}

	return out
}

func declaringPackage(method *types.Func) string {
	if method.Pkg() == nil {
		return "the universe scope"
	}

	return method.Pkg().Path()
}

// describe returns the comment text on a single line, directives removed.
func describe(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}

	return strings.Join(strings.Fields(cg.Text()), " ")
}

type directive struct {
	name string
	arg  string
}

func directives(cg *ast.CommentGroup) []directive {
	if cg == nil {
		return nil
	}

	var out []directive
	for _, c := range cg.List {
		rest, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}

		d := directive{name: fields[0]}
		if len(fields) > 1 {
			d.arg = fields[1]
		}
		out = append(out, d)
	}

	return out
}

func hasDirective(cg *ast.CommentGroup, name string) bool {
	for _, d := range directives(cg) {
		if d.name == name {
			return true
		}
	}

	return false
}

func packageDir(pkg *packages.Package) string {
	if file, ok := common.First(pkg.GoFiles); ok {
		return filepath.Dir(file)
	}

	return ""
}

func kindOf(t types.Type) string {
	switch t.(type) {
	case *types.Struct:
		return "struct"
	case *types.Basic:
		return "basic type"
	case *types.Signature:
		return "function type"
	case *types.Slice, *types.Array:
		return "list type"
	case *types.Map:
		return "map type"
	default:
		return "non-interface type"
	}
}

func allTypeNames(pkgs []*packages.Package) []string {
	var names []string
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		for _, name := range pkg.Types.Scope().Names() {
			if _, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
				names = append(names, name)
			}
		}
	}

	return names
}

func funcNames(pkg *types.Package) []string {
	var names []string
	for _, name := range pkg.Scope().Names() {
		if _, ok := pkg.Scope().Lookup(name).(*types.Func); ok {
			names = append(names, name)
		}
	}

	return names
}
