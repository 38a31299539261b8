package callback

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	ReceiptPath = "/success/receipt"

	gatewayStatusSuccess = "SUCCESS"
)

// View is everything the result page and the receipt display.
type View struct {
	State         State
	Message       string
	OrderID       string
	TransactionID string
	Amount        string
	Status        string
	CustomerName  string
	CustomerEmail string
	Timestamp     time.Time

	// StatusAssumed is set when the redirect carried no status and SUCCESS was
	// taken as the default.
	StatusAssumed bool
	Verified      bool
}

func (v View) CanDownloadReceipt() bool {
	return v.State == StateSuccess
}

// DisplayAmount renders the minor-unit amount in rupees. Values that are not
// whole numbers are shown as received.
func (v View) DisplayAmount() string {
	paise, err := strconv.ParseInt(strings.TrimSpace(v.Amount), 10, 64)
	if err != nil {
		return "₹" + v.Amount
	}
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, paise/100, paise%100)
}

// ReceiptURL points at the receipt for this exact view, carrying the
// transaction id and timestamp so the download matches the page.
func (v View) ReceiptURL() string {
	params := url.Values{}
	params.Set("order_id", v.OrderID)
	params.Set("amount", v.Amount)
	params.Set("name", v.CustomerName)
	params.Set("email", v.CustomerEmail)
	if !v.StatusAssumed {
		params.Set("status", v.Status)
	}
	params.Set("txn", v.TransactionID)
	params.Set("ts", v.Timestamp.UTC().Format(time.RFC3339))
	return ReceiptPath + "?" + params.Encode()
}

func ReceiptFilename(orderID string) string {
	return "payment-receipt-" + orderID + ".txt"
}

func ReceiptText(v View) string {
	var b strings.Builder
	b.WriteString("Payment Receipt\n")
	b.WriteString("--------------\n")
	fmt.Fprintf(&b, "Order ID: %s\n", v.OrderID)
	fmt.Fprintf(&b, "Transaction ID: %s\n", v.TransactionID)
	fmt.Fprintf(&b, "Amount: %s\n", v.DisplayAmount())
	fmt.Fprintf(&b, "Status: %s\n", v.Status)
	fmt.Fprintf(&b, "Date: %s\n", v.Timestamp.UTC().Format("02 Jan 2006 15:04:05 MST"))
	fmt.Fprintf(&b, "Customer: %s\n", v.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", v.CustomerEmail)
	return b.String()
}
