package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/hdbplan/hdbplan/internal/domain"
)

// HTMLFormatter produces a standalone HTML report of the purchase plan.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/plan.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(plan *domain.PurchasePlan) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PurchasePlan
		Assumptions []string
	}{plan, DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
