package report

import (
	"strconv"
	"strings"
	"time"

	"caminora/internal/domain"
)

// fallbackValue replaces any placeholder with no matching data field.
const fallbackValue = "N/A"

// Render substitutes every {{name}} placeholder in tpl with the value
// from data, in a single left-to-right pass. Substituted values are
// never re-scanned, so user content containing braces cannot inject
// further substitutions. Output is byte-identical for identical input.
func Render(tpl string, data map[string]string) string {
	var b strings.Builder
	b.Grow(len(tpl))

	for {
		start := strings.Index(tpl, "{{")
		if start < 0 {
			b.WriteString(tpl)
			break
		}
		rel := strings.Index(tpl[start:], "}}")
		if rel < 0 {
			b.WriteString(tpl)
			break
		}

		b.WriteString(tpl[:start])
		name := tpl[start+2 : start+rel]
		if v, ok := data[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(fallbackValue)
		}
		tpl = tpl[start+rel+2:]
	}

	return b.String()
}

// RenderInvoice binds derived invoice data to the invoice document.
// User-controlled fields are escaped here, exactly once.
func RenderInvoice(inv InvoiceData) string {
	return Render(invoiceTemplate, map[string]string{
		"invoice_number":     inv.InvoiceNumber,
		"invoice_date":       inv.InvoiceDate,
		"due_date":           inv.DueDate,
		"customer_name":      EscapeHTML(inv.CustomerName),
		"customer_email":     EscapeHTML(inv.CustomerEmail),
		"customer_id":        inv.CustomerID,
		"accommodation_name": EscapeHTML(inv.AccommodationName),
		"check_in":           inv.CheckIn,
		"check_out":          inv.CheckOut,
		"guests":             inv.Guests,
		"payment_status":     EscapeHTML(inv.PaymentStatus),
		"subtotal":           inv.Subtotal,
		"tax_rate":           inv.TaxRate,
		"tax_amount":         inv.TaxAmount,
		"total_price":        inv.TotalPrice,
		"grand_total":        inv.TotalPrice,
	})
}

// RenderRouteReport builds the tabular route report. Each field is
// escaped independently; rows are joined by the template's own row
// markup with no extra separator.
func RenderRouteReport(routes []domain.Route, now time.Time) string {
	var rows strings.Builder
	for _, r := range routes {
		rows.WriteString("<tr>")
		rows.WriteString("<td>" + EscapeHTML(r.Name) + "</td>")
		rows.WriteString("<td>" + EscapeHTML(r.Description) + "</td>")
		rows.WriteString("<td>" + strconv.FormatFloat(r.DistanceKm, 'f', 1, 64) + " km</td>")
		rows.WriteString("<td>" + difficultyLabel(r.Difficulty) + "</td>")
		rows.WriteString("<td>" + estimatedTimeLabel(r.EstimatedMinutes) + "</td>")
		rows.WriteString("<td>" + EscapeHTML(r.StartLocation) + "</td>")
		rows.WriteString("<td>" + EscapeHTML(r.EndLocation) + "</td>")
		rows.WriteString("</tr>")
	}

	return Render(routeReportTemplate, map[string]string{
		"generated_date": formatDate(now),
		"route_count":    strconv.Itoa(len(routes)),
		"rows":           rows.String(),
	})
}

func difficultyLabel(d domain.RouteDifficulty) string {
	switch d {
	case domain.RouteEasy:
		return "Fácil"
	case domain.RouteModerate:
		return "Moderada"
	case domain.RouteHard:
		return "Difícil"
	case domain.RouteExpert:
		return "Experto"
	default:
		return fallbackValue
	}
}

func estimatedTimeLabel(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return fallbackValue
	}
	return formatDuration(*minutes)
}

// Self-contained documents: inline styles only, no external resources,
// so the PDF renderer needs nothing beyond the string itself.

const invoiceTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Factura {{invoice_number}}</title>
</head>
<body style="margin:0;padding:32px;font-family:Helvetica,Arial,sans-serif;color:#1f2937;background:#ffffff;">
<div style="max-width:760px;margin:0 auto;">
  <div style="display:flex;justify-content:space-between;border-bottom:3px solid #0f766e;padding-bottom:16px;margin-bottom:24px;">
    <div>
      <h1 style="margin:0;font-size:24px;color:#0f766e;">Caminora</h1>
      <p style="margin:4px 0 0;font-size:12px;color:#6b7280;">Reservas de alojamiento</p>
    </div>
    <div style="text-align:right;font-size:13px;">
      <p style="margin:0;font-size:11px;text-transform:uppercase;color:#6b7280;">Factura</p>
      <p style="margin:2px 0;font-weight:bold;">{{invoice_number}}</p>
      <p style="margin:2px 0;">Fecha: {{invoice_date}}</p>
      <p style="margin:2px 0;">Vencimiento: {{due_date}}</p>
    </div>
  </div>
  <div style="margin-bottom:24px;font-size:13px;">
    <p style="margin:0;font-size:11px;text-transform:uppercase;color:#6b7280;">Cliente</p>
    <p style="margin:4px 0 0;font-weight:bold;">{{customer_name}}</p>
    <p style="margin:2px 0;">{{customer_address}}</p>
    <p style="margin:2px 0;">{{customer_email}}</p>
    <p style="margin:2px 0;">Reserva #{{customer_id}}</p>
  </div>
  <table style="width:100%;border-collapse:collapse;font-size:13px;">
    <thead>
      <tr style="background:#f0fdfa;">
        <th style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:left;">Alojamiento</th>
        <th style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:left;">Entrada</th>
        <th style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:left;">Salida</th>
        <th style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:center;">Huéspedes</th>
        <th style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:left;">Estado de pago</th>
        <th style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:right;">Importe</th>
      </tr>
    </thead>
    <tbody>
      <tr>
        <td style="padding:10px;border-bottom:1px solid #e5e7eb;">{{accommodation_name}}</td>
        <td style="padding:10px;border-bottom:1px solid #e5e7eb;">{{check_in}}</td>
        <td style="padding:10px;border-bottom:1px solid #e5e7eb;">{{check_out}}</td>
        <td style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:center;">{{guests}}</td>
        <td style="padding:10px;border-bottom:1px solid #e5e7eb;">{{payment_status}}</td>
        <td style="padding:10px;border-bottom:1px solid #e5e7eb;text-align:right;">{{total_price}}</td>
      </tr>
    </tbody>
  </table>
  <table style="width:260px;margin:16px 0 0 auto;border-collapse:collapse;font-size:13px;">
    <tr>
      <td style="padding:6px 10px;">Subtotal</td>
      <td style="padding:6px 10px;text-align:right;">{{subtotal}}</td>
    </tr>
    <tr>
      <td style="padding:6px 10px;">IVA ({{tax_rate}})</td>
      <td style="padding:6px 10px;text-align:right;">{{tax_amount}}</td>
    </tr>
    <tr style="font-weight:bold;border-top:2px solid #0f766e;">
      <td style="padding:8px 10px;">Total</td>
      <td style="padding:8px 10px;text-align:right;">{{grand_total}}</td>
    </tr>
  </table>
  <div style="margin-top:32px;border-top:1px solid #e5e7eb;padding-top:16px;font-size:11px;color:#6b7280;">
    <p style="margin:0;">Precios con IVA incluido. Factura generada electrónicamente, válida sin firma.</p>
  </div>
</div>
</body>
</html>`

const routeReportTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Informe de rutas</title>
</head>
<body style="margin:0;padding:32px;font-family:Helvetica,Arial,sans-serif;color:#1f2937;background:#ffffff;">
<div style="max-width:900px;margin:0 auto;">
  <div style="border-bottom:3px solid #0f766e;padding-bottom:16px;margin-bottom:24px;">
    <h1 style="margin:0;font-size:24px;color:#0f766e;">Caminora — Informe de rutas</h1>
    <p style="margin:4px 0 0;font-size:12px;color:#6b7280;">Generado el {{generated_date}} · {{route_count}} rutas</p>
  </div>
  <table style="width:100%;border-collapse:collapse;font-size:12px;">
    <thead>
      <tr style="background:#f0fdfa;text-align:left;">
        <th style="padding:8px;border-bottom:1px solid #e5e7eb;">Nombre</th>
        <th style="padding:8px;border-bottom:1px solid #e5e7eb;">Descripción</th>
        <th style="padding:8px;border-bottom:1px solid #e5e7eb;">Distancia</th>
        <th style="padding:8px;border-bottom:1px solid #e5e7eb;">Dificultad</th>
        <th style="padding:8px;border-bottom:1px solid #e5e7eb;">Tiempo est.</th>
        <th style="padding:8px;border-bottom:1px solid #e5e7eb;">Inicio</th>
        <th style="padding:8px;border-bottom:1px solid #e5e7eb;">Fin</th>
      </tr>
    </thead>
    <tbody>{{rows}}</tbody>
  </table>
</div>
</body>
</html>`
