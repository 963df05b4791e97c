// Package invalid holds malformed contracts for the analyzer tests.
package invalid

type Dup interface {
	Foo() int
	GetFoo() int
}

type Reserved interface {
	Help() bool
}

type Complex interface {
	Phase() complex128
}

type Slice interface {
	Tags() []string
}

type Args interface {
	Foo(x int) int
}

type FlagDefault interface {
	//optbind:default defaultVerbose
	Verbose() bool
}

func defaultVerbose(FlagDefault) bool { return true }

type MissingDefault interface {
	//optbind:default defaultSise
	Size() int
}

func defaultSize(MissingDefault) int { return 1 }

type WrongDefault interface {
	//optbind:default wrongDefault
	Size() int
}

func wrongDefault(WrongDefault) int64 { return 1 }

type Constraint interface {
	~int | ~string
}

type Struct struct{}
