package testhelpers

import (
	"github.com/DanielPopoola/plural-checkout/internal/application/services"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/google/uuid"
)

// ValidCustomer returns a customer with every required field and a billing address.
func ValidCustomer() *domain.Customer {
	return &domain.Customer{
		CustomerID:   "c1",
		EmailID:      "a@b.com",
		FirstName:    "A",
		LastName:     "B",
		MobileNumber: "9000000000",
		BillingAddress: &domain.Address{
			Address1: "1 MG Road",
			Pincode:  "560001",
			City:     "Bengaluru",
			State:    "Karnataka",
			Country:  "India",
		},
	}
}

func ValidCard() *domain.CardDetails {
	return &domain.CardDetails{
		Name:                   "A B",
		RegisteredMobileNumber: "9000000000",
		CardNumber:             "4111111111111111",
		CVV:                    "123",
		ExpiryMonth:            "12",
		ExpiryYear:             "2030",
	}
}

// DefaultOrderCommand returns a valid order command for testing
func DefaultOrderCommand() services.CreateOrderCommand {
	return services.CreateOrderCommand{
		Amount:    &domain.Amount{Value: 150000, Currency: domain.DefaultCurrency},
		Reference: "ref-" + uuid.NewString(),
		Customer:  ValidCustomer(),
	}
}

// DefaultPaymentCommand returns a valid card payment command for orderID
func DefaultPaymentCommand(orderID string) services.CreatePaymentCommand {
	return services.CreatePaymentCommand{
		OrderID: orderID,
		PaymentRequest: &domain.PaymentRequest{
			Payments: []domain.Payment{
				{
					PaymentAmount: domain.Amount{Value: 150000, Currency: domain.DefaultCurrency},
					PaymentMethod: domain.PaymentMethodCard,
					PaymentOption: domain.PaymentOption{CardDetails: ValidCard()},
				},
			},
		},
	}
}
