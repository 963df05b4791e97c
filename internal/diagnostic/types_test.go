package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Severity(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeNoDescription, "accessor has no description", "Options", "Size")
	d.AddWarning("SOMETHING", "a warning", "Options", "")
	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())

	d.AddError(CodeReservedOption, "--help is reserved", "Options", "Help")
	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{CodeReservedOption}, d.Codes())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "boom"},
			expected: "boom",
		},
		{
			name:     "with code and contract",
			diag:     Diagnostic{Code: CodeNotFound, Message: "no type Opts", Contract: "example.com/app.Opts"},
			expected: "[example.com/app.Opts]: [NOT_FOUND] no type Opts",
		},
		{
			name: "with accessor and suggestions",
			diag: Diagnostic{
				Code:        CodeBadDefault,
				Message:     "no function defaultSise",
				Contract:    "Options",
				Accessor:    "Size",
				Suggestions: []string{"defaultSize"},
			},
			expected: "[Options] Size: [BAD_DEFAULT] no function defaultSise (did you mean defaultSize?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnostics_ErrorAndMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeDuplicateOption, "--foo twice", "Options", "GetFoo")
	b.AddError(CodeFlagDefault, "flags take no default", "Options", "Verbose")
	b.AddInfo(CodeNoDescription, "undocumented", "Options", "Verbose")

	a.Merge(b)
	require.Len(t, a.Errors, 2)
	require.Len(t, a.Infos, 1)

	err := a.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[Options] GetFoo: [DUPLICATE_OPTION] --foo twice; [Options] Verbose: [FLAG_DEFAULT] flags take no default",
		err.Error())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
