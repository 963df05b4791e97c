package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"optbind/internal/analyze"
	"optbind/internal/match"
)

// Default settings.
const (
	DefaultSuffix     = "_optbind.go"
	DefaultBindImport = "optbind/bind"
)

// bindName is the identifier generated code uses for the bind package.
const bindName = "bind"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the snake-cased contract name to form the file name.
	Suffix string
	// BindImport is the import path of the bind runtime package.
	BindImport string
	// DebugUnformatted writes a .unformatted.go sidecar when formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           DefaultSuffix,
		BindImport:       DefaultBindImport,
		DebugUnformatted: true,
	}
}

// Generator renders bindings for analyzed contracts.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
// Empty fields fall back to the defaults.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultSuffix
	}

	if config.BindImport == "" {
		config.BindImport = DefaultBindImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Contract is the contract the file binds.
	Contract analyze.TypeID
	// Dir is the directory of the contract's package.
	Dir string
	// Filename is the name of the file (e.g., "options_optbind.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per contract.
func (g *Generator) Generate(contracts []*analyze.Contract) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(contracts))

	for _, c := range contracts {
		file, err := g.generateContract(c)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", c.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// Filename returns the file name generated for a contract.
func (g *Generator) Filename(c *analyze.Contract) string {
	return match.SnakeCase(c.ID.Name) + g.config.Suffix
}

// templateData holds all data needed for the binding template.
type templateData struct {
	PackageName string
	StdImports  []importSpec
	Imports     []importSpec
	Contract    string
	Wrapper     string
	Constructor string
	Accessors   []accessorData
	Options     []string
}

// accessorData is one forwarding method.
type accessorData struct {
	Method string
	Result string
	Expr   string
}

func (g *Generator) generateContract(c *analyze.Contract) (*GeneratedFile, error) {
	imports := newImportSet(c.Types)
	imports.add(g.config.BindImport, bindName)

	data := &templateData{
		PackageName: c.PkgName,
		Contract:    c.ID.Name,
		Wrapper:     WrapperName(c),
		Constructor: ConstructorName(c),
	}

	for i := range c.Accessors {
		acc := &c.Accessors[i]
		result := imports.typeString(acc.Result)

		expr := fmt.Sprintf("%s.Get[%s](o.m, %q)", bindName, result, acc.Option)
		if acc.PlainFlag() {
			expr = fmt.Sprintf("o.m.Flag(%q)", acc.Option)
		}

		data.Accessors = append(data.Accessors, accessorData{
			Method: acc.Method,
			Result: result,
			Expr:   expr,
		})

		if acc.Description != "" {
			data.Options = append(data.Options,
				fmt.Sprintf("%s.Describe(%q, %q)", bindName, acc.Method, acc.Description))
		}

		if acc.DefaultFunc != "" {
			data.Options = append(data.Options,
				fmt.Sprintf("%s.Default(%q, %s)", bindName, acc.Method, acc.DefaultFunc))
		}
	}

	data.StdImports, data.Imports = imports.grouped(g.config.BindImport)

	file := &GeneratedFile{
		Contract: c.ID,
		Dir:      c.Dir,
		Filename: g.Filename(c),
	}

	var buf bytes.Buffer
	if err := bindingTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(c.Dir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

// WrapperName returns the name of the generated wrapper type:
// Options -> optionsModel, HTTPOptions -> httpOptionsModel.
func WrapperName(c *analyze.Contract) string {
	return match.LowerLeadingWord(c.ID.Name) + "Model"
}

// ConstructorName returns the name of the generated parser constructor. It
// is exported only when the contract is.
func ConstructorName(c *analyze.Contract) string {
	if c.Exported() {
		return "New" + c.ID.Name + "Parser"
	}

	return "new" + upperFirst(c.ID.Name) + "Parser"
}

func upperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}

	return s
}

var bindingTemplate = template.Must(template.New("binding").Parse(strings.TrimLeft(`
// Code generated by optbind. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .StdImports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
{{- if .StdImports}}
{{end}}
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.Wrapper}} answers {{.Contract}} from a parsed bind.Model.
type {{.Wrapper}} struct{ m *bind.Model }

// BoundModel returns the model behind the instance.
func (o {{.Wrapper}}) BoundModel() *bind.Model { return o.m }
{{range .Accessors}}
func (o {{$.Wrapper}}) {{.Method}}() {{.Result}} { return {{.Expr}} }
{{end}}
// {{.Constructor}} returns a parser for {{.Contract}}.
func {{.Constructor}}(opts ...bind.Option) (*bind.Parser[{{.Contract}}], error) {
	return bind.NewParser[{{.Contract}}](opts...)
}

func init() {
	bind.Register(func(m *bind.Model) {{.Contract}} { return {{.Wrapper}}{m} },
{{- range .Options}}
		{{.}},
{{- end}}
	)
}
`, "\n")))
