package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

func TestTestCredentialsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTester := NewMockCredentialTester(ctrl)
	handler := NewTestCredentialsHandler(mockTester)

	balance := decimal.RequireFromString("42.5")
	gotBalance := 42.5

	tests := []struct {
		name           string
		body           string
		mock           func()
		expectedStatus int
		expectedBody   TestCredentialsResponse
	}{
		{
			name: "valid",
			body: `{"apiKey":"k","apiSecret":"s"}`,
			mock: func() {
				mockTester.EXPECT().
					Test(gomock.Any(), models.Credentials{APIKey: "k", APISecret: "s"}).
					Return(models.CredentialCheck{Valid: true, Message: "API credentials are valid", Balance: &balance}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   TestCredentialsResponse{Valid: true, Message: "API credentials are valid", Balance: &gotBalance},
		},
		{
			name: "rejected",
			body: `{"apiKey":"k","apiSecret":"bad"}`,
			mock: func() {
				mockTester.EXPECT().
					Test(gomock.Any(), models.Credentials{APIKey: "k", APISecret: "bad"}).
					Return(models.CredentialCheck{Error: "Invalid API secret. Please check your secret key is correct."}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   TestCredentialsResponse{Error: "Invalid API secret. Please check your secret key is correct."},
		},
		{
			name: "unclassified",
			body: `{"apiKey":"k","apiSecret":"s"}`,
			mock: func() {
				mockTester.EXPECT().
					Test(gomock.Any(), gomock.Any()).
					Return(models.CredentialCheck{Error: "API Error: boom", DebugInfo: "boom"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   TestCredentialsResponse{Error: "API Error: boom", DebugInfo: "boom"},
		},
		{
			name: "missing_fields",
			body: `{"apiKey":"k"}`,
			mock: func() {
				mockTester.EXPECT().
					Test(gomock.Any(), models.Credentials{APIKey: "k"}).
					Return(models.CredentialCheck{Error: "API key and secret are required"},
						apperrors.New(apperrors.ErrValidation, "API key and secret are required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   TestCredentialsResponse{Error: "API key and secret are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/test-credentials", bytes.NewReader([]byte(tt.body))))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var got TestCredentialsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestTestCredentialsHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTestCredentialsHandler(NewMockCredentialTester(ctrl))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/test-credentials", bytes.NewReader([]byte(`nope`))))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var got TestCredentialsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, "Failed to test credentials", got.Error)
}
