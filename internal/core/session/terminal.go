package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
)

// Checkout states. Cancelling drops straight back to Idle; completing
// either opens the receipt prompt (market tills) or returns to Idle
// (order desks).
type CheckoutState string

const (
	StateIdle            CheckoutState = "idle"
	StateAwaitingMethod  CheckoutState = "awaiting_method"
	StateAwaitingReceipt CheckoutState = "awaiting_receipt"
)

var (
	// ErrEmptyCart guards Idle -> AwaitingMethod: checkout is simply
	// not offered for an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrBadState means a checkout operation arrived in a state whose
	// transitions do not allow it.
	ErrBadState = errors.New("operation not allowed in current checkout state")

	// ErrNotEligible means the product failed the stock/status guard.
	ErrNotEligible = errors.New("product is not eligible for sale")
)

// Feedback windows, matching the till display behaviour: the product
// pulse is quick, the counter highlight a beat longer, the payment
// banner longest.
const (
	JustAddedWindow        = 300 * time.Millisecond
	HighlightWindow        = 1 * time.Second
	PaymentCompletedWindow = 2 * time.Second
)

// Config fixes the per-session behaviour of a terminal.
type Config struct {
	Rates         domain.Rates
	ReceiptPrompt bool // market variant: ask how to deliver the receipt

	// Feedback windows; zero values fall back to the standard ones.
	JustAddedWindow        time.Duration
	HighlightWindow        time.Duration
	PaymentCompletedWindow time.Duration
}

// Terminal is one till session: the cart ledger, the running
// transaction counter, the checkout state machine and the ephemeral
// feedback flags, all owned by a single lock.
//
// There is exactly one writer (the terminal itself); every mutation is
// read-after-write consistent. The counter and session start live here
// and nowhere else, never in package-level state.
type Terminal struct {
	mu  sync.Mutex
	cfg Config

	cart  *domain.Cart
	state CheckoutState

	transactionCount int
	sessionStart     time.Time

	// Order held between completion and the receipt choice.
	pendingReceipt *domain.Order

	justAdded    *KeyedFlag
	highlightTxn *Flag
	paymentDone  *Flag
}

func NewTerminal(cfg Config) *Terminal {
	if cfg.JustAddedWindow == 0 {
		cfg.JustAddedWindow = JustAddedWindow
	}
	if cfg.HighlightWindow == 0 {
		cfg.HighlightWindow = HighlightWindow
	}
	if cfg.PaymentCompletedWindow == 0 {
		cfg.PaymentCompletedWindow = PaymentCompletedWindow
	}
	if cfg.Rates.Discount.IsZero() && cfg.Rates.Tax.IsZero() {
		cfg.Rates = domain.DefaultRates()
	}

	return &Terminal{
		cfg:          cfg,
		cart:         domain.NewCart(),
		state:        StateIdle,
		sessionStart: time.Now(),
		justAdded:    NewKeyedFlag(cfg.JustAddedWindow),
		highlightTxn: NewFlag(cfg.HighlightWindow),
		paymentDone:  NewFlag(cfg.PaymentCompletedWindow),
	}
}

// AddProduct runs the eligibility guard and, if it passes, puts one
// unit in the cart and fires the "just added" pulse.
//
// The guard is re-checked here on purpose: over HTTP the render-time
// check and the add request race against catalog changes, so the
// session enforces it again rather than trusting the caller. The cart
// ledger itself still never validates.
func (t *Terminal) AddProduct(p domain.Product) (domain.CartLine, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !domain.CanAdd(p) {
		return domain.CartLine{}, ErrNotEligible
	}

	line := t.cart.Add(p)
	t.justAdded.Trigger(p.ID)
	return line, nil
}

// SetQuantity forwards to the ledger; qty <= 0 removes the line.
func (t *Terminal) SetQuantity(lineID uuid.UUID, quantity int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cart.SetQuantity(lineID, quantity)
}

// RemoveLine deletes a line; unknown lines are a no-op.
func (t *Terminal) RemoveLine(lineID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cart.Remove(lineID)
}

// Cart returns the ordered line snapshot, the current price breakdown
// and the total unit count. Pricing is recomputed on every call; it is
// cheap and never cached.
func (t *Terminal) Cart() ([]domain.CartLine, domain.PricingResult, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := t.cart.Snapshot()
	return lines, domain.Price(lines, t.cfg.Rates), t.cart.TotalItems()
}

// BeginCheckout opens the payment-method selection surface.
// Idle -> AwaitingMethod, guarded by a non-empty cart.
func (t *Terminal) BeginCheckout() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateIdle {
		return ErrBadState
	}
	if t.cart.IsEmpty() {
		return ErrEmptyCart
	}
	t.state = StateAwaitingMethod
	return nil
}

// CancelCheckout aborts: AwaitingMethod -> Idle. The cart, pricing and
// counter are untouched.
func (t *Terminal) CancelCheckout() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateAwaitingMethod {
		return ErrBadState
	}
	t.state = StateIdle
	return nil
}

// CompleteCheckout confirms the payment method and settles the sale.
// All side effects happen under the lock as one step, so no reader ever
// sees a cleared cart with a stale counter or vice versa:
//
//  1. the order and transaction are built from the cart snapshot,
//  2. the cart is cleared,
//  3. the transaction counter goes up by exactly one,
//  4. (receipt-prompt tills) the feedback flags fire and the receipt
//     prompt opens.
//
// Payment failure is not modelled here: once the cashier confirms a
// method the amount is taken to resolve. Gateway-level failures belong
// to the collaborator behind the payment method, out of scope for the
// till.
func (t *Terminal) CompleteCheckout(method string, customerType domain.CustomerType, saleType domain.SaleType) (domain.Order, domain.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateAwaitingMethod {
		return domain.Order{}, domain.Transaction{}, ErrBadState
	}

	lines := t.cart.Snapshot()
	pricing := domain.Price(lines, t.cfg.Rates)
	order, txn := domain.BuildOrder(lines, pricing, customerType, saleType, method)

	t.cart.Clear()
	t.transactionCount++

	if t.cfg.ReceiptPrompt {
		t.paymentDone.Trigger()
		t.highlightTxn.Trigger()
		t.pendingReceipt = &order
		t.state = StateAwaitingReceipt
	} else {
		t.state = StateIdle
	}

	return order, txn, nil
}

// SelectReceipt closes the receipt prompt and hands back the order the
// choice applies to. The channel itself means nothing to the session;
// delivery is the dispatcher's problem.
func (t *Terminal) SelectReceipt() (domain.Order, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateAwaitingReceipt || t.pendingReceipt == nil {
		return domain.Order{}, ErrBadState
	}
	order := *t.pendingReceipt
	t.pendingReceipt = nil
	t.state = StateIdle
	return order, nil
}

func (t *Terminal) State() CheckoutState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// TransactionCount is monotonic: it only moves on completed payments.
func (t *Terminal) TransactionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.transactionCount
}

func (t *Terminal) SessionStart() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sessionStart
}

// Feedback is the current state of the ephemeral flags, for rendering.
type Feedback struct {
	JustAddedProductID string `json:"just_added_product_id,omitempty"`
	HighlightTxn       bool   `json:"highlight_transactions"`
	PaymentCompleted   bool   `json:"payment_completed"`
}

func (t *Terminal) Feedback() Feedback {
	return Feedback{
		JustAddedProductID: t.justAdded.Current(),
		HighlightTxn:       t.highlightTxn.Active(),
		PaymentCompleted:   t.paymentDone.Active(),
	}
}
