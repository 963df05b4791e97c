package bind_test

import (
	"errors"
	"time"

	"optbind/bind"
)

// The wrappers below have the shape cmd/optbind generates.

type flagOptions interface {
	Foo() bool
}

type flagOptionsModel struct{ m *bind.Model }

func (o flagOptionsModel) Foo() bool { return o.m.Flag("foo") }

type beanFlagOptions interface {
	IsFoo() bool
	GetBar() bool
}

type beanFlagOptionsModel struct{ m *bind.Model }

func (o beanFlagOptionsModel) IsFoo() bool  { return o.m.Flag("foo") }
func (o beanFlagOptionsModel) GetBar() bool { return o.m.Flag("bar") }

type simpleOptions interface {
	Foo() int
	Bar() string
	Ratio() float64
	Timeout() time.Duration
	Name() *string
	Limit() *uint16
	Strict() *bool
}

type simpleOptionsModel struct{ m *bind.Model }

func (o simpleOptionsModel) BoundModel() *bind.Model { return o.m }
func (o simpleOptionsModel) Foo() int                { return bind.Get[int](o.m, "foo") }
func (o simpleOptionsModel) Bar() string             { return bind.Get[string](o.m, "bar") }
func (o simpleOptionsModel) Ratio() float64          { return bind.Get[float64](o.m, "ratio") }
func (o simpleOptionsModel) Timeout() time.Duration  { return bind.Get[time.Duration](o.m, "timeout") }
func (o simpleOptionsModel) Name() *string           { return bind.Get[*string](o.m, "name") }
func (o simpleOptionsModel) Limit() *uint16          { return bind.Get[*uint16](o.m, "limit") }
func (o simpleOptionsModel) Strict() *bool           { return bind.Get[*bool](o.m, "strict") }

type beanOptions interface {
	GetFoo() int
	GetBar() string
}

type beanOptionsModel struct{ m *bind.Model }

func (o beanOptionsModel) GetFoo() int    { return bind.Get[int](o.m, "foo") }
func (o beanOptionsModel) GetBar() string { return bind.Get[string](o.m, "bar") }

type level int

type levelOptions interface {
	Level() level
}

type levelOptionsModel struct{ m *bind.Model }

func (o levelOptionsModel) Level() level { return bind.Get[level](o.m, "level") }

type exampleOptions interface {
	Verbose() bool
	Size() int
}

type exampleOptionsModel struct{ m *bind.Model }

func (o exampleOptionsModel) Verbose() bool { return o.m.Flag("verbose") }
func (o exampleOptionsModel) Size() int     { return bind.Get[int](o.m, "size") }

func defaultSize(exampleOptions) int { return 1024 }

type derivedOptions interface {
	Width() int
	Height() int
}

type derivedOptionsModel struct{ m *bind.Model }

func (o derivedOptionsModel) Width() int  { return bind.Get[int](o.m, "width") }
func (o derivedOptionsModel) Height() int { return bind.Get[int](o.m, "height") }

type failingOptions interface {
	Port() int
}

type failingOptionsModel struct{ m *bind.Model }

func (o failingOptionsModel) Port() int { return bind.Get[int](o.m, "port") }

var errNoPort = errors.New("no port configured")

type commonOptions interface {
	Port() int
}

type embeddedOptions interface {
	commonOptions
	Addr() string
}

type embeddedOptionsModel struct{ m *bind.Model }

func (o embeddedOptionsModel) Addr() string { return bind.Get[string](o.m, "addr") }
func (o embeddedOptionsModel) Port() int    { return bind.Get[int](o.m, "port") }

func defaultCommonPort(commonOptions) int { return 9000 }

type emptyOptions interface{}

type emptyOptionsModel struct{ m *bind.Model }

type dupOptions interface {
	Foo() int
	GetFoo() int
}

type helpOptions interface {
	Help() bool
}

type complexOptions interface {
	Phase() complex128
}

type sliceOptions interface {
	Tags() []string
}

type argOptions interface {
	Foo(x int) int
}

type unregisteredOptions interface {
	Foo() bool
}

func init() {
	bind.Register(func(m *bind.Model) flagOptions { return flagOptionsModel{m} })
	bind.Register(func(m *bind.Model) beanFlagOptions { return beanFlagOptionsModel{m} })
	bind.Register(func(m *bind.Model) simpleOptions { return simpleOptionsModel{m} },
		bind.Describe("Timeout", "How long to wait"))
	bind.Register(func(m *bind.Model) beanOptions { return beanOptionsModel{m} })
	bind.Register(func(m *bind.Model) levelOptions { return levelOptionsModel{m} })
	bind.Register(func(m *bind.Model) exampleOptions { return exampleOptionsModel{m} },
		bind.Describe("Verbose", "Enable verbose output"),
		bind.Describe("Size", "Size hint for efficient allocations"),
		bind.Default("Size", defaultSize))
	bind.Register(func(m *bind.Model) derivedOptions { return derivedOptionsModel{m} },
		bind.Default("Height", func(o derivedOptions) int { return o.Width() * 2 }))
	bind.Register(func(m *bind.Model) failingOptions { return failingOptionsModel{m} },
		bind.Default("Port", func(failingOptions) int { panic(errNoPort) }))
	bind.Register(func(m *bind.Model) embeddedOptions { return embeddedOptionsModel{m} },
		bind.Default("Port", defaultCommonPort))
	bind.Register(func(m *bind.Model) emptyOptions { return emptyOptionsModel{m} })
}
