package datasource

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/odpf/salt/log"
	"github.com/stretchr/testify/assert"

	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/core/analytics"
)

func TestStringifyDatasources(t *testing.T) {
	out := stringifyDatasources([]analytics.Datasource{
		{
			ID:          "ds-1",
			Name:        "sales",
			Type:        "hyper",
			ProjectName: "Finance",
			UpdatedAt:   time.Date(2022, 6, 14, 4, 28, 21, 0, time.UTC),
		},
		{ID: "ds-2", Name: "orders"},
	})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "PROJECT")
	assert.Contains(t, out, "sales")
	assert.Contains(t, out, "Finance")
	assert.Contains(t, out, "2022-06-14T04:28:21Z")
	assert.Contains(t, out, "orders")
}

func TestPrintDatasources(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	t.Run("should print names containing percent signs verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		l := &listCommand{logger: log.NewNoop(), printer: logger.NewPrinterWithWriter(&buf)}

		l.printDatasources([]analytics.Datasource{
			{ID: "ds-1", Name: "Sales 100%d growth", ProjectName: "Q%s", Type: "hyper"},
		})

		assert.Contains(t, buf.String(), "Sales 100%d growth")
		assert.Contains(t, buf.String(), "Q%s")
		assert.NotContains(t, buf.String(), "MISSING")
	})

	t.Run("should say when nothing is visible", func(t *testing.T) {
		var buf bytes.Buffer
		l := &listCommand{logger: log.NewNoop(), printer: logger.NewPrinterWithWriter(&buf)}

		l.printDatasources(nil)

		assert.Equal(t, "No datasources were found.\n", buf.String())
	})
}
