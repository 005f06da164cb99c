package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"loan-simulator/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScheduleCmd_JSON(t *testing.T) {
	is := is.New(t)

	out, err := run(t, "schedule", "-p", "10000", "-t", "12", "-r", "24", "-m", "german", "-o", "json")
	is.NoErr(err)

	var s domain.Schedule
	is.NoErr(json.Unmarshal([]byte(out), &s))
	is.Equal(s.Parameters.Method, domain.MethodGerman)
	is.Equal(len(s.Installments), 12)
}

func TestScheduleCmd_YAML(t *testing.T) {
	is := is.New(t)

	out, err := run(t, "schedule", "--term", "3", "--method", "americano", "--output", "yaml")
	is.NoErr(err)

	var s domain.Schedule
	is.NoErr(yaml.Unmarshal([]byte(out), &s))
	is.Equal(len(s.Installments), 3)
	is.Equal(s.Installments[2].Capital, 10000.0)
}

func TestScheduleCmd_TableAndPDF(t *testing.T) {
	is := is.New(t)
	pdfPath := filepath.Join(t.TempDir(), "schedule.pdf")

	out, err := run(t, "schedule", "--pdf", pdfPath)
	is.NoErr(err)
	is.True(strings.Contains(out, "French"))
	is.True(strings.Contains(out, "Total interest"))

	data, err := os.ReadFile(pdfPath)
	is.NoErr(err)
	is.True(bytes.HasPrefix(data, []byte("%PDF")))
}

func TestScheduleCmd_Errors(t *testing.T) {
	is := is.New(t)

	_, err := run(t, "schedule", "--principal", "0")
	is.True(err != nil)

	_, err = run(t, "schedule", "--method", "swiss")
	is.True(err != nil)

	_, err = run(t, "schedule", "--output", "xml")
	is.True(err != nil)
}

func TestCompareCmd(t *testing.T) {
	is := is.New(t)

	out, err := run(t, "compare", "-o", "json")
	is.NoErr(err)

	var c domain.Comparison
	is.NoErr(json.Unmarshal([]byte(out), &c))
	is.Equal(c.Cheapest, domain.MethodGerman)
}

func TestRecommendCmd(t *testing.T) {
	is := is.New(t)

	out, err := run(t, "recommend", "--min-term", "6", "--max-term", "24", "--preference", "minimize_interest")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "Recommended term: 12 months"))
}
