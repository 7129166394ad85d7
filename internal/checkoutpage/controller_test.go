package checkoutpage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
)

type fakeAPI struct {
	mu           sync.Mutex
	checkouts    []response.CheckoutResponse
	getErr       error
	generateErr  error
	statuses     []usecase.CheckoutStatus
	statusCalls  int
	generated    []string
	statusHook   func()
	generateHook func()
}

func (f *fakeAPI) GetCheckout(_ context.Context, _ string) (response.CheckoutResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return response.CheckoutResponse{}, f.getErr
	}
	co := f.checkouts[0]
	if len(f.checkouts) > 1 {
		f.checkouts = f.checkouts[1:]
	}
	return co, nil
}

func (f *fakeAPI) GeneratePix(_ context.Context, checkoutID string) (response.CheckoutResponse, error) {
	f.mu.Lock()
	f.generated = append(f.generated, checkoutID)
	err := f.generateErr
	hook := f.generateHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return response.CheckoutResponse{}, err
}

func (f *fakeAPI) generateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generated)
}

func (f *fakeAPI) GetStatus(_ context.Context, _ string) (usecase.CheckoutStatus, error) {
	f.mu.Lock()
	f.statusCalls++
	st := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	hook := f.statusHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return st, nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls
}

type fakeNav struct {
	mu    sync.Mutex
	paths []string
}

func (n *fakeNav) Redirect(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *fakeNav) redirects() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

func waiting(expires time.Time, qr string) response.CheckoutResponse {
	return response.CheckoutResponse{
		ID:            "chk-1",
		CheckoutSlug:  "abc",
		PaymentStatus: string(entities.PaymentStatusWaitingPayment),
		PixQRCode:     qr,
		ExpiresAt:     expires,
	}
}

func TestController_Load(t *testing.T) {
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name    string
		slug    string
		api     *fakeAPI
		state   State
		message string
	}{
		{"empty slug", " ", &fakeAPI{}, StateError, MsgInvalidLink},
		{"not found", "abc", &fakeAPI{getErr: ErrNotFound}, StateError, MsgNotFound},
		{"awaiting pix", "abc", &fakeAPI{checkouts: []response.CheckoutResponse{waiting(future, "")}}, StateAwaitingPixGeneration, ""},
		{"pix already generated", "abc", &fakeAPI{checkouts: []response.CheckoutResponse{waiting(future, "000201")}}, StatePixDisplayed, ""},
		{"expired", "abc", &fakeAPI{checkouts: []response.CheckoutResponse{waiting(time.Now().Add(-time.Minute), "")}}, StateError, MsgExpired},
		{"paid without thank-you slug", "abc", &fakeAPI{checkouts: []response.CheckoutResponse{{ID: "chk-1", PaymentStatus: "paid"}}}, StateError, MsgPaidWithoutThank},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(tc.api, &fakeNav{}, tc.slug)
			_ = c.Load(context.Background())
			if c.State() != tc.state {
				t.Fatalf("expected state %s, got %s", tc.state, c.State())
			}
			if c.Error() != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, c.Error())
			}
		})
	}

	t.Run("paid with thank-you slug redirects", func(t *testing.T) {
		nav := &fakeNav{}
		api := &fakeAPI{checkouts: []response.CheckoutResponse{{ID: "chk-1", PaymentStatus: "paid", ThankYouSlug: "ty-x"}}}
		c := NewController(api, nav, "abc")
		if err := c.Load(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.State() != StatePaidRedirect || len(nav.redirects()) != 1 || nav.redirects()[0] != "/obrigado/ty-x" {
			t.Fatalf("unexpected state=%s redirects=%v", c.State(), nav.redirects())
		}
	})
}

func TestController_GeneratePix(t *testing.T) {
	future := time.Now().Add(time.Hour)

	t.Run("failure keeps state and is retryable", func(t *testing.T) {
		api := &fakeAPI{checkouts: []response.CheckoutResponse{waiting(future, "")}, generateErr: errors.New("gateway down")}
		c := NewController(api, &fakeNav{}, "abc")
		_ = c.Load(context.Background())

		if err := c.GeneratePix(context.Background()); err == nil {
			t.Fatal("expected error")
		}
		if c.State() != StateAwaitingPixGeneration || c.Error() != "gateway down" {
			t.Fatalf("unexpected state=%s err=%q", c.State(), c.Error())
		}

		api.mu.Lock()
		api.generateErr = nil
		api.checkouts = []response.CheckoutResponse{waiting(future, "000201")}
		api.mu.Unlock()

		if err := c.GeneratePix(context.Background()); err != nil {
			t.Fatalf("retry failed: %v", err)
		}
		if c.State() != StatePixDisplayed || c.Checkout().PixQRCode != "000201" || c.Error() != "" {
			t.Fatalf("unexpected state=%s checkout=%+v", c.State(), c.Checkout())
		}
		if len(api.generated) != 2 || api.generated[0] != "chk-1" {
			t.Fatalf("unexpected generate calls %v", api.generated)
		}
	})

	t.Run("not available once pix is displayed", func(t *testing.T) {
		api := &fakeAPI{checkouts: []response.CheckoutResponse{waiting(future, "000201")}}
		c := NewController(api, &fakeNav{}, "abc")
		_ = c.Load(context.Background())

		if err := c.GeneratePix(context.Background()); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if len(api.generated) != 0 {
			t.Fatal("gateway should not be called")
		}
	})
}

func TestController_GeneratePixIgnoresDoubleClick(t *testing.T) {
	future := time.Now().Add(time.Hour)
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	api := &fakeAPI{checkouts: []response.CheckoutResponse{waiting(future, ""), waiting(future, "000201")}}
	api.generateHook = func() {
		entered <- struct{}{}
		<-release
	}
	c := NewController(api, &fakeNav{}, "abc")
	_ = c.Load(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.GeneratePix(context.Background()) }()
	<-entered

	if err := c.GeneratePix(context.Background()); !errors.Is(err, ErrGenerateInFlight) {
		t.Fatalf("expected second click to be rejected, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first click: %v", err)
	}
	if api.generateCalls() != 1 {
		t.Fatalf("expected one generate call, got %d", api.generateCalls())
	}
	if c.State() != StatePixDisplayed {
		t.Fatalf("expected pix_displayed, got %s", c.State())
	}

	if err := c.GeneratePix(context.Background()); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState after success, got %v", err)
	}
}

func TestController_PollRedirectsOnceAndStops(t *testing.T) {
	future := time.Now().Add(time.Hour)
	api := &fakeAPI{
		checkouts: []response.CheckoutResponse{waiting(future, "000201")},
		statuses: []usecase.CheckoutStatus{
			{PaymentStatus: entities.PaymentStatusWaitingPayment},
			{PaymentStatus: entities.PaymentStatusPaid, ThankYouSlug: "ty-abc123"},
		},
	}
	nav := &fakeNav{}
	c := NewController(api, nav, "abc")
	_ = c.Load(context.Background())

	if err := c.PollTick(context.Background()); err != nil {
		t.Fatalf("poll 1: %v", err)
	}
	if c.State() != StatePixDisplayed {
		t.Fatalf("expected pix_displayed, got %s", c.State())
	}
	if err := c.PollTick(context.Background()); err != nil {
		t.Fatalf("poll 2: %v", err)
	}
	if c.State() != StatePaidRedirect {
		t.Fatalf("expected paid_redirect, got %s", c.State())
	}
	if got := nav.redirects(); len(got) != 1 || got[0] != "/obrigado/ty-abc123" {
		t.Fatalf("unexpected redirects %v", got)
	}

	_ = c.PollTick(context.Background())
	if api.calls() != 2 {
		t.Fatalf("expected no poll after redirect, got %d calls", api.calls())
	}
}

func TestController_PollOverlapGuard(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	api := &fakeAPI{
		checkouts: []response.CheckoutResponse{waiting(time.Now().Add(time.Hour), "000201")},
		statuses:  []usecase.CheckoutStatus{{PaymentStatus: entities.PaymentStatusWaitingPayment}},
	}
	api.statusHook = func() {
		entered <- struct{}{}
		<-release
	}
	c := NewController(api, &fakeNav{}, "abc")
	_ = c.Load(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.PollTick(context.Background()) }()
	<-entered

	if err := c.PollTick(context.Background()); !errors.Is(err, errPollInFlight) {
		t.Fatalf("expected overlapping tick to be skipped, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first poll: %v", err)
	}
	if api.calls() != 1 {
		t.Fatalf("expected one status call, got %d", api.calls())
	}
}

func TestController_ExpiryAndCountdown(t *testing.T) {
	expires := time.Now().Add(time.Minute)
	api := &fakeAPI{checkouts: []response.CheckoutResponse{waiting(expires, "000201")}}
	c := NewController(api, &fakeNav{}, "abc")
	loadedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return loadedAt }
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := c.Countdown(loadedAt.Add(5 * time.Minute)); got != 10*time.Minute {
		t.Fatalf("expected 10m countdown, got %v", got)
	}
	if got := c.Countdown(loadedAt.Add(time.Hour)); got != 0 {
		t.Fatalf("countdown should floor at zero, got %v", got)
	}

	if c.CheckExpiry(expires.Add(-time.Second)) {
		t.Fatal("not yet expired")
	}
	if !c.CheckExpiry(expires.Add(time.Second)) {
		t.Fatal("expected expiry")
	}
	if c.State() != StateError || c.Error() != MsgExpired {
		t.Fatalf("unexpected state=%s err=%q", c.State(), c.Error())
	}
	if err := c.PollTick(context.Background()); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("poll after expiry should be rejected, got %v", err)
	}
}

func TestController_Run(t *testing.T) {
	api := &fakeAPI{
		checkouts: []response.CheckoutResponse{waiting(time.Now().Add(time.Hour), "000201")},
		statuses: []usecase.CheckoutStatus{
			{PaymentStatus: entities.PaymentStatusWaitingPayment},
			{PaymentStatus: entities.PaymentStatusPaid, ThankYouSlug: "ty-abc123"},
		},
	}
	nav := &fakeNav{}
	c := NewController(api, nav, "abc")
	c.pollInterval = 5 * time.Millisecond
	c.expiryInterval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if c.State() != StatePaidRedirect {
		t.Fatalf("expected paid_redirect, got %s", c.State())
	}

	calls := api.calls()
	time.Sleep(30 * time.Millisecond)
	if api.calls() != calls {
		t.Fatal("polling continued after redirect")
	}
	if got := nav.redirects(); len(got) != 1 || got[0] != "/obrigado/ty-abc123" {
		t.Fatalf("unexpected redirects %v", got)
	}
}
