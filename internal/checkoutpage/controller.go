// Package checkoutpage drives the payer-facing checkout page: it loads a
// checkout, triggers PIX generation and polls until the payment is confirmed
// or the link expires.
package checkoutpage

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
)

type State string

const (
	StateLoading               State = "loading"
	StateError                 State = "error"
	StateAwaitingPixGeneration State = "awaiting_pix_generation"
	StatePixDisplayed          State = "pix_displayed"
	StatePaidRedirect          State = "paid_redirect"
)

const (
	PollInterval        = 5 * time.Second
	ExpiryCheckInterval = time.Second
	DisplayCountdown    = 15 * time.Minute

	ThankYouPathPrefix = "/obrigado/"

	MsgInvalidLink      = "Link inválido"
	MsgNotFound         = "Checkout não encontrado"
	MsgExpired          = "Este link de checkout expirou"
	MsgPaidWithoutThank = "Pagamento confirmado, mas a página de confirmação não está disponível"
)

var (
	ErrNotFound         = errors.New("checkout not found")
	ErrInvalidState     = errors.New("action not available in current state")
	ErrMissingThankYou  = errors.New("checkout paid without thank-you slug")
	ErrGenerateInFlight = errors.New("pix generation already in flight")
	errPollInFlight     = errors.New("poll already in flight")
)

// API is the subset of the checkout service the page talks to.
type API interface {
	GetCheckout(ctx context.Context, slug string) (response.CheckoutResponse, error)
	GeneratePix(ctx context.Context, checkoutID string) (response.CheckoutResponse, error)
	GetStatus(ctx context.Context, slug string) (usecase.CheckoutStatus, error)
}

// Navigator performs the browser redirect.
type Navigator interface {
	Redirect(path string)
}

type Controller struct {
	api  API
	nav  Navigator
	slug string

	pollInterval   time.Duration
	expiryInterval time.Duration
	now            func() time.Time

	mu         sync.Mutex
	state      State
	checkout   response.CheckoutResponse
	errMsg     string
	loadedAt   time.Time
	polling    atomic.Bool
	generating atomic.Bool
}

func NewController(api API, nav Navigator, slug string) *Controller {
	return &Controller{
		api:            api,
		nav:            nav,
		slug:           strings.TrimSpace(slug),
		pollInterval:   PollInterval,
		expiryInterval: ExpiryCheckInterval,
		now:            time.Now,
		state:          StateLoading,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Checkout() response.CheckoutResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkout
}

// Error is the message shown to the payer, if any.
func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Controller) Load(ctx context.Context) error {
	if c.slug == "" {
		c.fail(MsgInvalidLink)
		return ErrNotFound
	}

	co, err := c.api.GetCheckout(ctx, c.slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.fail(MsgNotFound)
		} else {
			c.fail(err.Error())
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkout = co
	c.loadedAt = c.now()

	switch {
	case entities.PaymentStatus(co.PaymentStatus) == entities.PaymentStatusPaid:
		return c.redirectLocked(co.ThankYouSlug)
	case !co.ExpiresAt.IsZero() && c.now().After(co.ExpiresAt):
		c.failLocked(MsgExpired)
	case co.PixQRCode != "":
		c.state = StatePixDisplayed
	default:
		c.state = StateAwaitingPixGeneration
	}
	return nil
}

// GeneratePix asks the service for a PIX charge. A failure keeps the page in
// StateAwaitingPixGeneration so the payer can retry. A second call while one
// is outstanding returns ErrGenerateInFlight without reaching the service.
func (c *Controller) GeneratePix(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateAwaitingPixGeneration {
		c.mu.Unlock()
		return ErrInvalidState
	}
	if !c.generating.CompareAndSwap(false, true) {
		c.mu.Unlock()
		return ErrGenerateInFlight
	}
	defer c.generating.Store(false)
	checkoutID := c.checkout.ID
	c.errMsg = ""
	c.mu.Unlock()

	if _, err := c.api.GeneratePix(ctx, checkoutID); err != nil {
		log.Printf("[checkoutpage] generate pix failed checkout_id=%s err=%v", checkoutID, err)
		c.mu.Lock()
		c.errMsg = err.Error()
		c.mu.Unlock()
		return err
	}

	co, err := c.api.GetCheckout(ctx, c.slug)
	if err != nil {
		c.mu.Lock()
		c.errMsg = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAwaitingPixGeneration {
		return nil
	}
	c.checkout = co
	if co.PixQRCode != "" {
		c.state = StatePixDisplayed
	}
	return nil
}

// PollTick fetches the current payment status. Ticks that arrive while a
// previous poll is still running are dropped.
func (c *Controller) PollTick(ctx context.Context) error {
	if c.State() != StatePixDisplayed {
		return ErrInvalidState
	}
	if !c.polling.CompareAndSwap(false, true) {
		return errPollInFlight
	}
	defer c.polling.Store(false)

	st, err := c.api.GetStatus(ctx, c.slug)
	if err != nil {
		log.Printf("[checkoutpage] poll failed slug=%s err=%v", c.slug, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePixDisplayed {
		return nil
	}
	c.checkout.PaymentStatus = string(st.PaymentStatus)
	if st.ThankYouSlug != "" {
		c.checkout.ThankYouSlug = st.ThankYouSlug
	}
	if st.PaymentStatus == entities.PaymentStatusPaid {
		return c.redirectLocked(st.ThankYouSlug)
	}
	return nil
}

// CheckExpiry invalidates the page once expires_at has passed, whatever the
// polls report.
func (c *Controller) CheckExpiry(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.terminalLocked() || c.state == StateLoading {
		return false
	}
	if c.checkout.ExpiresAt.IsZero() || !now.After(c.checkout.ExpiresAt) {
		return false
	}
	c.failLocked(MsgExpired)
	return true
}

// Countdown is the fixed display timer, independent of expires_at.
func (c *Controller) Countdown(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadedAt.IsZero() {
		return DisplayCountdown
	}
	return max(0, DisplayCountdown-now.Sub(c.loadedAt))
}

// Run loads the checkout and drives the poll and expiry timers until ctx is
// done or the page reaches a terminal state.
func (c *Controller) Run(ctx context.Context) error {
	if c.State() == StateLoading {
		if err := c.Load(ctx); err != nil {
			return err
		}
	}

	pollTicker := time.NewTicker(c.pollInterval)
	defer pollTicker.Stop()
	expiryTicker := time.NewTicker(c.expiryInterval)
	defer expiryTicker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		if c.terminal() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pollTicker.C:
			if c.State() != StatePixDisplayed {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = c.PollTick(ctx)
			}()
		case now := <-expiryTicker.C:
			c.CheckExpiry(now)
		}
	}
}

func (c *Controller) redirectLocked(thankYouSlug string) error {
	if thankYouSlug == "" {
		c.failLocked(MsgPaidWithoutThank)
		return ErrMissingThankYou
	}
	c.state = StatePaidRedirect
	c.nav.Redirect(ThankYouPathPrefix + thankYouSlug)
	return nil
}

func (c *Controller) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failLocked(msg)
}

func (c *Controller) failLocked(msg string) {
	c.state = StateError
	c.errMsg = msg
}

func (c *Controller) terminal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terminalLocked()
}

func (c *Controller) terminalLocked() bool {
	return c.state == StateError || c.state == StatePaidRedirect
}
