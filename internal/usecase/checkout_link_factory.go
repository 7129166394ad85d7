package usecase

import (
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxDiscountPercentage = 90
	checkoutSlugLength    = 12
)

// CheckoutLinkFactory builds recovery checkout links for payments.
type CheckoutLinkFactory struct {
	DiscountPercentage int
	Expiration         time.Duration
}

func NewCheckoutLinkFactory(discountPct int, expiration time.Duration) CheckoutLinkFactory {
	if discountPct < 0 || discountPct > MaxDiscountPercentage {
		discountPct = 0
	}
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return CheckoutLinkFactory{DiscountPercentage: discountPct, Expiration: expiration}
}

// Build copies the payment's customer and product data into a new link,
// applying discountPct (the factory default when nil).
func (f CheckoutLinkFactory) Build(p entities.Payment, discountPct *int, now time.Time) entities.CheckoutLink {
	pct := f.DiscountPercentage
	if discountPct != nil {
		pct = *discountPct
	}
	discount, final := applyDiscount(p.Amount, pct)
	return entities.CheckoutLink{
		ID:                 uuid.NewString(),
		UserID:             p.UserID,
		PaymentID:          p.ID,
		CheckoutSlug:       newSlug(),
		CustomerName:       p.CustomerName,
		CustomerEmail:      p.CustomerEmail,
		CustomerDocument:   p.CustomerDocument,
		CustomerPhone:      p.CustomerPhone,
		ProductName:        p.ProductName,
		Amount:             p.Amount,
		OriginalAmount:     p.Amount,
		DiscountPercentage: pct,
		DiscountAmount:     discount,
		FinalAmount:        final,
		PaymentBestfyID:    p.BestfyID,
		PaymentStatus:      p.Status,
		ExpiresAt:          now.Add(f.Expiration),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// applyDiscount returns the discount (rounded half-up to the cent) and the
// final amount for amount cents at pct percent.
func applyDiscount(amount int64, pct int) (discount, final int64) {
	if pct <= 0 || amount <= 0 {
		return 0, amount
	}
	d := decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(int64(pct))).
		Div(decimal.NewFromInt(100)).
		Round(0)
	discount = d.IntPart()
	return discount, amount - discount
}

func newSlug() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:checkoutSlugLength]
}

func newThankYouSlug() string {
	return "ty-" + newSlug()
}

// FormatBRL renders cents as "R$ 1.234,56".
func FormatBRL(cents int64) string {
	v := decimal.New(cents, -2).StringFixed(2)
	neg := strings.HasPrefix(v, "-")
	v = strings.TrimPrefix(v, "-")
	intPart, frac, _ := strings.Cut(v, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
