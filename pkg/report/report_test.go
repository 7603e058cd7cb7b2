package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhradilek/check-links/pkg/lint"
)

func TestReport_RecordFailPrintsImmediately(t *testing.T) {
	var buf bytes.Buffer
	rep := New(Options{Writer: &buf, Color: "never"})

	rep.Record(lint.Outcome{Status: lint.StatusFail, Message: "the module has no steps"})

	assert.Contains(t, buf.String(), "fail")
	assert.Contains(t, buf.String(), "the module has no steps")
	assert.Equal(t, 1, rep.Checked())
	assert.Equal(t, 1, rep.Issues())
}

func TestReport_PassSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	rep := New(Options{Writer: &buf, Color: "never"})

	rep.Record(lint.Outcome{Status: lint.StatusPass, Message: "all good"})

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, rep.Checked())
	assert.Zero(t, rep.Issues())
}

func TestReport_PassPrintedWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	rep := New(Options{Writer: &buf, Verbose: true, Color: "never"})

	rep.Record(lint.Outcome{Status: lint.StatusPass, Message: "all good"})

	assert.Contains(t, buf.String(), "pass")
	assert.Contains(t, buf.String(), "all good")
}

func TestReport_IssuesNeverExceedChecked(t *testing.T) {
	rep := New(Options{Color: "never"})

	outcomes := []lint.Outcome{
		{Status: lint.StatusPass},
		{Status: lint.StatusFail},
		{Status: lint.StatusFail},
		{Status: lint.StatusPass},
	}

	for _, o := range outcomes {
		rep.Record(o)
		assert.LessOrEqual(t, rep.Issues(), rep.Checked())
	}

	assert.Equal(t, 4, rep.Checked())
	assert.Equal(t, 2, rep.Issues())
	assert.False(t, rep.Success())
}

func TestReport_Summary(t *testing.T) {
	var buf bytes.Buffer
	rep := New(Options{Writer: &buf, Color: "never"})

	rep.Record(lint.Outcome{Status: lint.StatusPass})
	rep.Record(lint.Outcome{Status: lint.StatusFail, Message: "bad"})
	rep.PrintSummary()

	assert.Contains(t, buf.String(), "Checked 2 item(s), found 1 problem(s).")
}

func TestReport_SuccessWithNoOutcomes(t *testing.T) {
	rep := New(Options{Color: "never"})

	assert.True(t, rep.Success())
	assert.Zero(t, rep.Checked())
}

func TestReport_PrintHeader(t *testing.T) {
	var buf bytes.Buffer
	rep := New(Options{Writer: &buf, Color: "never"})

	rep.PrintHeader("proc_install.adoc")

	assert.Equal(t, "Testing file: proc_install.adoc\n", buf.String())
}
