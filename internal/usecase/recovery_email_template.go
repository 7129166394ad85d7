package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const recoveryEmailTag = "pix-recovery"

var recoveryEmailHTML = template.Must(template.New("recovery").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="UTF-8"><title>Finalize seu pagamento</title></head>
<body style="font-family:Arial,sans-serif;background:#f5f5f5;margin:0;padding:24px">
  <div style="max-width:560px;margin:0 auto;background:#fff;border-radius:8px;padding:32px">
    <h2 style="color:#1a1a1a">Olá, {{.CustomerName}}!</h2>
    <p>Notamos que o seu pagamento via PIX ainda não foi concluído.</p>
    <table style="width:100%;border-collapse:collapse;margin:16px 0">
      <tr><td style="padding:4px 0;color:#666">Produto</td><td style="text-align:right">{{.ProductName}}</td></tr>
      <tr><td style="padding:4px 0;color:#666">Valor</td><td style="text-align:right"><strong>{{.Amount}}</strong></td></tr>
      {{- if .HasDiscount}}
      <tr><td style="padding:4px 0;color:#0a7d32">Desconto de {{.DiscountPercentage}}%</td><td style="text-align:right;color:#0a7d32"><strong>{{.FinalAmount}}</strong></td></tr>
      {{- end}}
      <tr><td style="padding:4px 0;color:#666">Transação</td><td style="text-align:right">{{.TransactionID}}</td></tr>
    </table>
    <p style="text-align:center;margin:32px 0">
      <a href="{{.CheckoutURL}}" style="background:#32bcad;color:#fff;padding:14px 28px;border-radius:6px;text-decoration:none;font-weight:bold">Finalizar pagamento</a>
    </p>
    <p style="color:#b00020;text-align:center">O código PIX gerado é válido por 15 minutos.</p>
    <p style="color:#999;font-size:12px">Se você já realizou o pagamento, desconsidere este e-mail.</p>
  </div>
</body>
</html>`))

type recoveryEmailData struct {
	CustomerName       string
	ProductName        string
	Amount             string
	HasDiscount        bool
	DiscountPercentage int
	FinalAmount        string
	TransactionID      string
	CheckoutURL        string
}

func renderRecoveryEmail(d recoveryEmailData) (htmlBody, textBody string, err error) {
	var buf bytes.Buffer
	if err := recoveryEmailHTML.Execute(&buf, d); err != nil {
		return "", "", err
	}

	var txt strings.Builder
	fmt.Fprintf(&txt, "Olá, %s!\n\n", d.CustomerName)
	fmt.Fprintf(&txt, "Seu pagamento via PIX de %s (%s) ainda não foi concluído.\n", d.Amount, d.ProductName)
	if d.HasDiscount {
		fmt.Fprintf(&txt, "Com %d%% de desconto: %s.\n", d.DiscountPercentage, d.FinalAmount)
	}
	fmt.Fprintf(&txt, "Transação: %s\n\nFinalize em: %s\n\nO código PIX gerado é válido por 15 minutos.\n", d.TransactionID, d.CheckoutURL)
	return buf.String(), txt.String(), nil
}

func recoveryEmailSubject(customerName, productName string) string {
	return fmt.Sprintf("🔔 %s, finalize seu PIX - %s", customerName, productName)
}
