package entities

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// FlexibleID accepts ids sent either as JSON strings or numbers.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

func (f FlexibleID) String() string { return string(f) }

type GatewayDocument struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type GatewayCustomer struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Document *GatewayDocument `json:"document,omitempty"`
}

type GatewayItem struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

type GatewayProduct struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

// GatewayTransaction is a transaction as reported by the payment gateway,
// either inside a webhook envelope or in a listing.
type GatewayTransaction struct {
	ID            FlexibleID       `json:"id"`
	CompanyID     FlexibleID       `json:"companyId"`
	Status        string           `json:"status"`
	Amount        int64            `json:"amount"`
	PaymentMethod string           `json:"paymentMethod"`
	Customer      *GatewayCustomer `json:"customer,omitempty"`
	Items         []GatewayItem    `json:"items,omitempty"`
	Product       *GatewayProduct  `json:"product,omitempty"`
	CreatedAt     string           `json:"createdAt,omitempty"`
}

func (t GatewayTransaction) CustomerName() string {
	if t.Customer != nil && strings.TrimSpace(t.Customer.Name) != "" {
		return strings.TrimSpace(t.Customer.Name)
	}
	return ""
}

func (t GatewayTransaction) CustomerEmail() string {
	if t.Customer != nil {
		return strings.ToLower(strings.TrimSpace(t.Customer.Email))
	}
	return ""
}

func (t GatewayTransaction) CustomerPhone() string {
	if t.Customer != nil {
		return strings.TrimSpace(t.Customer.Phone)
	}
	return ""
}

func (t GatewayTransaction) CustomerDocument() string {
	if t.Customer != nil && t.Customer.Document != nil {
		return strings.TrimSpace(t.Customer.Document.Number)
	}
	return ""
}

// ProductName is the first item title, then the product title or name.
func (t GatewayTransaction) ProductName() string {
	if len(t.Items) > 0 && strings.TrimSpace(t.Items[0].Title) != "" {
		return strings.TrimSpace(t.Items[0].Title)
	}
	if t.Product != nil {
		if v := strings.TrimSpace(t.Product.Title); v != "" {
			return v
		}
		if v := strings.TrimSpace(t.Product.Name); v != "" {
			return v
		}
	}
	return ""
}

func (t GatewayTransaction) Method() string {
	if m := strings.ToLower(strings.TrimSpace(t.PaymentMethod)); m != "" {
		return m
	}
	return PaymentMethodPix
}

// CreatedTime parses the gateway creation timestamp, returning fallback when
// it is absent or malformed.
func (t GatewayTransaction) CreatedTime(fallback time.Time) time.Time {
	if t.CreatedAt == "" {
		return fallback
	}
	if ts, err := time.Parse(time.RFC3339Nano, t.CreatedAt); err == nil {
		return ts.UTC()
	}
	return fallback
}

// WebhookEvent is the envelope posted by the gateway.
type WebhookEvent struct {
	ID       FlexibleID         `json:"id"`
	Type     string             `json:"type"`
	ObjectID FlexibleID         `json:"objectId"`
	Data     GatewayTransaction `json:"data"`
}

// TransactionID resolves the transaction id: data.id, then objectId, then id.
func (e WebhookEvent) TransactionID() string {
	for _, v := range []FlexibleID{e.Data.ID, e.ObjectID, e.ID} {
		if s := strings.TrimSpace(string(v)); s != "" {
			return s
		}
	}
	return ""
}

// PixChargeRequest is what the gateway needs to create a PIX charge.
type PixChargeRequest struct {
	Amount            int64
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	CustomerDocument  string
	ProductName       string
	ExternalReference string
}

// DocumentType infers cpf (11 digits) or cnpj from the customer document.
func (r PixChargeRequest) DocumentType() string {
	if len(OnlyDigits(r.CustomerDocument)) == 11 {
		return "cpf"
	}
	return "cnpj"
}

// PixCharge is the gateway's answer to a PIX charge creation.
type PixCharge struct {
	TransactionID string
	Status        PaymentStatus
	QRCode        string
	ExpiresAt     *time.Time
}

func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
