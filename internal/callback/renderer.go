package callback

import (
	"context"
	"embed"
	"html/template"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/segmentio/ksuid"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

const (
	defaultAmount = "0"
	defaultName   = "Customer"
	defaultEmail  = "customer@example.com"

	msgOrderIDNotFound   = "Order ID not found"
	msgMissingParameters = "Missing required payment parameters"
	msgVerifyFailed      = "Unable to confirm payment status"
)

// StatusVerifier looks up the authoritative order status on the gateway.
type StatusVerifier interface {
	OrderStatus(ctx context.Context, orderID string) (string, error)
}

type Options struct {
	// Strict requires order_id, amount, name and email. Otherwise only
	// order_id is required and the rest fall back to placeholders.
	Strict bool
	// VerifyWithGateway derives SUCCESS or FAILURE from the gateway order
	// status instead of the redirect's status parameter.
	VerifyWithGateway bool
}

type Renderer struct {
	opts             Options
	verifier         StatusVerifier
	logger           *slog.Logger
	now              func() time.Time
	newTransactionID func() string
}

func NewRenderer(opts Options, verifier StatusVerifier, logger *slog.Logger) *Renderer {
	return &Renderer{
		opts:             opts,
		verifier:         verifier,
		logger:           logger,
		now:              time.Now,
		newTransactionID: func() string { return "TXN" + ksuid.New().String() },
	}
}

// Resolve settles the page state from the redirect parameters.
func (r *Renderer) Resolve(ctx context.Context, params url.Values) View {
	view := View{State: StateLoading, Timestamp: r.now().UTC()}

	orderID := strings.TrimSpace(params.Get("order_id"))
	amount := params.Get("amount")
	name := params.Get("name")
	email := params.Get("email")

	if orderID == "" {
		return r.fail(ctx, view, msgOrderIDNotFound)
	}
	if r.opts.Strict && (amount == "" || name == "" || email == "") {
		return r.fail(ctx, view, msgMissingParameters)
	}

	view.OrderID = orderID
	view.Amount = valueOr(amount, defaultAmount)
	view.CustomerName = valueOr(name, defaultName)
	view.CustomerEmail = valueOr(email, defaultEmail)
	view.TransactionID = r.transactionID(params)
	if ts, err := time.Parse(time.RFC3339, params.Get("ts")); err == nil {
		view.Timestamp = ts.UTC()
	}

	view.Status = params.Get("status")
	if view.Status == "" {
		view.Status = gatewayStatusSuccess
		view.StatusAssumed = true
		r.logger.WarnContext(ctx, "callback carried no status, assuming success",
			"order_id", orderID,
		)
	}

	next := StateFailure
	if view.Status == gatewayStatusSuccess {
		next = StateSuccess
	}

	if r.opts.VerifyWithGateway && r.verifier != nil {
		status, err := r.verifier.OrderStatus(ctx, orderID)
		if err != nil {
			r.logger.ErrorContext(ctx, "callback verification failed", "order_id", orderID, "error", err)
			return r.fail(ctx, view, msgVerifyFailed)
		}
		view.Verified = true
		next = stateForGatewayStatus(status)
		if next == StateSuccess {
			view.Status = gatewayStatusSuccess
		} else {
			view.Status = status
		}
		view.StatusAssumed = false
	}

	_ = view.transition(next)

	r.logger.InfoContext(ctx, "callback resolved",
		"order_id", orderID,
		"state", view.State,
		"status", view.Status,
		"status_assumed", view.StatusAssumed,
		"verified", view.Verified,
	)
	return view
}

func (r *Renderer) Render(w io.Writer, view View) error {
	return pageTemplate.Execute(w, view)
}

func (r *Renderer) fail(ctx context.Context, view View, message string) View {
	view.Message = message
	_ = view.transition(StateError)
	r.logger.WarnContext(ctx, "callback rejected", "reason", message)
	return view
}

// transactionID reuses the id issued on the page so the receipt matches it.
func (r *Renderer) transactionID(params url.Values) string {
	if txn := params.Get("txn"); strings.HasPrefix(txn, "TXN") {
		if _, err := ksuid.Parse(strings.TrimPrefix(txn, "TXN")); err == nil {
			return txn
		}
	}
	return r.newTransactionID()
}

func stateForGatewayStatus(status string) State {
	switch strings.ToUpper(status) {
	case "PROCESSED", "AUTHORIZED", gatewayStatusSuccess:
		return StateSuccess
	default:
		return StateFailure
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
