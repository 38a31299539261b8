package testdata

import "github.com/DanielPopoola/plural-checkout/internal/domain"

// Test cards understood by the fake gateway
type TestCard struct {
	Card        domain.CardDetails
	Description string
}

var (
	ValidCard = TestCard{
		Card: domain.CardDetails{
			Name:                   "A B",
			RegisteredMobileNumber: "9000000000",
			CardNumber:             "4111111111111111",
			CVV:                    "123",
			ExpiryMonth:            "12",
			ExpiryYear:             "2030",
		},
		Description: "Happy path card, answered with a 3DS challenge",
	}

	DeclinedCard = TestCard{
		Card: domain.CardDetails{
			Name:                   "A B",
			RegisteredMobileNumber: "9000000000",
			CardNumber:             "4000000000000002",
			CVV:                    "456",
			ExpiryMonth:            "06",
			ExpiryYear:             "2031",
		},
		Description: "Rejected by the gateway with 422",
	}
)

func Customer() domain.Customer {
	return domain.Customer{
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
