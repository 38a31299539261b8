package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"syscall"
	"testing"

	"github.com/DanielPopoola/plural-checkout/internal/application"
	"github.com/DanielPopoola/plural-checkout/internal/application/mocks"
	"github.com/DanielPopoola/plural-checkout/internal/application/services"
	"github.com/DanielPopoola/plural-checkout/internal/application/services/testhelpers"
	"github.com/DanielPopoola/plural-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockGateway *mocks.MockGatewayClient
	service     *services.PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockGateway = mocks.NewMockGatewayClient(suite.T())
	suite.service = services.NewPaymentService(suite.mockGateway, services.NewValidator(), discardLogger())
}

func (suite *PaymentServiceTestSuite) Test_CreatePayment_ReturnsGatewayBody() {
	t := suite.T()
	body := json.RawMessage(`{"data":{"order_id":"v1-ord-1","status":"PENDING","challenge_url":"https://acs.example/3ds"}}`)

	suite.mockGateway.EXPECT().GetToken(mock.Anything).
		Return(&domain.Token{AccessToken: "tok-1"}, nil).Once()

	var sent domain.PaymentRequest
	suite.mockGateway.EXPECT().CreatePayment(mock.Anything, "tok-1", "v1-ord-1", mock.Anything).
		Run(func(_ context.Context, _, _ string, req domain.PaymentRequest) { sent = req }).
		Return(&application.PaymentResponse{
			Body:         body,
			OrderID:      "v1-ord-1",
			Status:       "PENDING",
			ChallengeURL: "https://acs.example/3ds",
		}, nil).Once()

	result, err := suite.service.CreatePayment(context.Background(), testhelpers.DefaultPaymentCommand("v1-ord-1"))

	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(result.Body))
	assert.Equal(t, "https://acs.example/3ds", result.ChallengeURL)

	require.Len(t, sent.Payments, 1)
	assert.Equal(t, domain.PaymentMethodCard, sent.Payments[0].PaymentMethod)
	assert.Equal(t, result.MerchantPaymentReference, sent.Payments[0].MerchantPaymentReference)
	assert.Equal(t, "4111111111111111", sent.Payments[0].PaymentOption.CardDetails.CardNumber)
}

func (suite *PaymentServiceTestSuite) Test_CreatePayment_FreshReferencePerAttempt() {
	t := suite.T()

	suite.mockGateway.EXPECT().GetToken(mock.Anything).
		Return(&domain.Token{AccessToken: "tok-1"}, nil).Twice()

	var references []string
	suite.mockGateway.EXPECT().CreatePayment(mock.Anything, "tok-1", "v1-ord-1", mock.Anything).
		Run(func(_ context.Context, _, _ string, req domain.PaymentRequest) {
			references = append(references, req.Payments[0].MerchantPaymentReference)
		}).
		Return(&application.PaymentResponse{Body: json.RawMessage(`{}`)}, nil).Twice()

	cmd := testhelpers.DefaultPaymentCommand("v1-ord-1")
	_, err := suite.service.CreatePayment(context.Background(), cmd)
	require.NoError(t, err)
	_, err = suite.service.CreatePayment(context.Background(), cmd)
	require.NoError(t, err)

	require.Len(t, references, 2)
	assert.NotEmpty(t, references[0])
	assert.NotEqual(t, references[0], references[1])
}

func (suite *PaymentServiceTestSuite) Test_CreatePayment_MissingOrderID() {
	t := suite.T()

	_, err := suite.service.CreatePayment(context.Background(), testhelpers.DefaultPaymentCommand(""))

	domainErr, ok := domain.IsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"orderId"}, domainErr.Fields)
	suite.mockGateway.AssertNotCalled(t, "GetToken", mock.Anything)
}

func (suite *PaymentServiceTestSuite) Test_CreatePayment_MissingCard() {
	t := suite.T()
	cmd := testhelpers.DefaultPaymentCommand("v1-ord-1")
	cmd.PaymentRequest.Payments[0].PaymentOption.CardDetails = nil

	_, err := suite.service.CreatePayment(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMissingCard))

	cmd.PaymentRequest = nil
	_, err = suite.service.CreatePayment(context.Background(), cmd)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMissingCard))
}

func (suite *PaymentServiceTestSuite) Test_CreatePayment_ReportsExactMissingCardFields() {
	t := suite.T()
	cmd := testhelpers.DefaultPaymentCommand("v1-ord-1")
	cmd.PaymentRequest.Payments[0].PaymentOption.CardDetails.CVV = ""
	cmd.PaymentRequest.Payments[0].PaymentOption.CardDetails.ExpiryYear = ""

	_, err := suite.service.CreatePayment(context.Background(), cmd)

	domainErr, ok := domain.IsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"cvv", "expiry_year"}, domainErr.Fields)
	assert.Equal(t, "Missing required card fields: cvv, expiry_year", domainErr.Message)
	assert.Equal(t, http.StatusBadRequest, application.ToHTTPStatus(err))
}

func (suite *PaymentServiceTestSuite) Test_CreatePayment_GatewayUnreachable() {
	t := suite.T()

	suite.mockGateway.EXPECT().GetToken(mock.Anything).
		Return(&domain.Token{AccessToken: "tok-1"}, nil).Once()
	suite.mockGateway.EXPECT().CreatePayment(mock.Anything, "tok-1", "v1-ord-1", mock.Anything).
		Return(nil, &application.ConnectivityError{Operation: "create_payment", Err: syscall.ECONNREFUSED}).Once()

	_, err := suite.service.CreatePayment(context.Background(), testhelpers.DefaultPaymentCommand("v1-ord-1"))

	assert.Equal(t, http.StatusServiceUnavailable, application.ToHTTPStatus(err))
}

func (suite *PaymentServiceTestSuite) Test_CreatePayment_GatewayRejects() {
	t := suite.T()

	suite.mockGateway.EXPECT().GetToken(mock.Anything).
		Return(&domain.Token{AccessToken: "tok-1"}, nil).Once()
	suite.mockGateway.EXPECT().CreatePayment(mock.Anything, "tok-1", "v1-ord-1", mock.Anything).
		Return(nil, &application.GatewayError{Operation: "create_payment", StatusCode: http.StatusBadRequest}).Once()

	_, err := suite.service.CreatePayment(context.Background(), testhelpers.DefaultPaymentCommand("v1-ord-1"))

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to create payment", svcErr.Message)
	assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus)
}
