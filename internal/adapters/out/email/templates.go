package email

import (
	"bytes"
	"html/template"
	"strconv"

	"configurator/internal/core/ports"
)

const layoutOpen = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{template "title" .}}</title>
</head>
<body style="margin:0; padding:0; font-family: system-ui, -apple-system, sans-serif; background:#f3f4f6;">
  <div style="max-width:560px; margin:0 auto; padding:24px;">
    <div style="background:#fff; border-radius:12px; padding:32px; box-shadow:0 1px 3px rgba(0,0,0,0.1);">`

const layoutClose = `
    </div>
  </div>
</body>
</html>`

var customerTemplate = template.Must(template.New("customer").Funcs(template.FuncMap{"clp": formatCLP}).Parse(
	`{{define "title"}}Pedido confirmado{{end}}` + layoutOpen + `
      <h1 style="margin:0 0 8px; font-size:24px; color:#1e293b;">¡Hola, {{.CustomerName}}!</h1>
      <p style="margin:0 0 24px; color:#64748b; font-size:16px;">Tu pedido en HiniBricks ha sido confirmado correctamente.</p>
      <div style="background:#f8fafc; border-radius:8px; padding:20px; margin-bottom:24px;">
        <p style="margin:0 0 8px; font-weight:600; color:#0f172a;">Pedido #{{.OrderID}}</p>
        <p style="margin:0 0 4px; color:#475569;">Plan: {{.PlanName}}</p>
        <p style="margin:0; font-size:20px; font-weight:700; color:#2563eb;">${{clp .TotalPrice}}</p>
      </div>
      <p style="margin:0; color:#64748b; font-size:14px;">Nos pondremos en contacto contigo para los siguientes pasos.</p>
      <p style="margin:24px 0 0; color:#94a3b8; font-size:12px;">El equipo de HiniBricks · hinibricks.cl</p>` + layoutClose,
))

var adminTemplate = template.Must(template.New("admin").Funcs(template.FuncMap{"clp": formatCLP}).Parse(
	`{{define "title"}}Nuevo pedido #{{.OrderID}}{{end}}` + layoutOpen + `
      <h1 style="margin:0 0 8px; font-size:24px; color:#1e293b;">Nuevo pedido #{{.OrderID}}</h1>
      <p style="margin:0 0 24px; color:#64748b; font-size:16px;">Se ha registrado un pedido desde hinibricks.cl.</p>
      <div style="background:#f8fafc; border-radius:8px; padding:20px; margin-bottom:24px;">
        <p style="margin:0 0 8px;"><strong>Cliente:</strong> {{.CustomerName}}</p>
        <p style="margin:0 0 8px;"><strong>Email:</strong> {{.CustomerEmail}}</p>
        <p style="margin:0 0 8px;"><strong>Plan:</strong> {{.PlanName}}</p>
        <p style="margin:0; font-size:20px; font-weight:700; color:#2563eb;">Total: ${{clp .TotalPrice}}</p>
      </div>
      <p style="margin:0; color:#64748b; font-size:14px;">Revisa el panel de administración para más detalles.</p>` + layoutClose,
))

func render(t *template.Template, n ports.OrderNotification) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatCLP groups thousands with dots, as Chilean pesos are written: 10500 -> "10.500".
func formatCLP(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if amount < 0 {
		sign, digits = "-", digits[1:]
	}

	var out []byte
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	return sign + string(out)
}
