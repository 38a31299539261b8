package handlers

import (
	"bytes"
	"io"
	"mime"
	"net/http"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/callback"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest"
)

const errCodeReceiptUnavailable = "RECEIPT_UNAVAILABLE"

// SuccessPage renders the page the gateway redirects to after payment.
func (h *Handlers) SuccessPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.successPage)
}

// CallbackPage is the lenient variant of SuccessPage.
func (h *Handlers) CallbackPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.callbackPage)
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, renderer *callback.Renderer) {
	view := renderer.Resolve(r.Context(), r.URL.Query())

	var buf bytes.Buffer
	if err := renderer.Render(&buf, view); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render result page", "error", err)
		http.Error(w, "Failed to process payment callback", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// DownloadReceipt godoc
// @Summary      Download a plain-text payment receipt
// @Tags         pages
// @Produce      plain
// @Param        order_id  query     string  true   "Order reference"
// @Param        amount    query     string  true   "Amount in paise"
// @Param        name      query     string  true   "Customer name"
// @Param        email     query     string  true   "Customer email"
// @Param        status    query     string  false  "Gateway status"
// @Success      200       {string}  string
// @Failure      400       {object}  rest.ErrorResponse
// @Failure      409       {object}  rest.ErrorResponse
// @Router       /success/receipt [get]
func (h *Handlers) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	view := h.successPage.Resolve(r.Context(), r.URL.Query())

	switch view.State {
	case callback.StateSuccess:
	case callback.StateError:
		rest.WriteError(w, domain.NewInvalidCallbackError(view.Message), h.logger)
		return
	default:
		rest.WriteError(w, &application.ServiceError{
			Code:       errCodeReceiptUnavailable,
			Message:    "Receipt is only available for successful payments",
			HTTPStatus: http.StatusConflict,
		}, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", receiptDisposition(view.OrderID))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, callback.ReceiptText(view))
}

func receiptDisposition(orderID string) string {
	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": callback.ReceiptFilename(orderID),
	})
	if disposition == "" {
		return "attachment"
	}
	return disposition
}
