package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipemarinho/ewallet/internal/models"
	"github.com/felipemarinho/ewallet/internal/services"
)

func TestListDebtorsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockDebtorManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), userID).Return(nil, nil)

	rec := serveWithParams(http.MethodGet, "/users/debtors", NewListDebtorsHandler(mockSvc),
		authedRequest(http.MethodGet, "/users/debtors", nil, userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty list serializes as [], not null")
}

func TestCreateDebtorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	debtorID := uuid.New()

	mockSvc := NewMockDebtorManager(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), userID, "Alice", "#ff0000").
		Return(&models.DebtorDB{DebtorID: debtorID, UserID: userID, Name: "Alice", Color: "#ff0000"}, nil)

	raw, _ := json.Marshal(CreateDebtorRequest{Name: "Alice", Color: "#ff0000"})
	rec := serveWithParams(http.MethodPost, "/users/debtors", NewCreateDebtorHandler(mockSvc),
		authedRequest(http.MethodPost, "/users/debtors", bytes.NewBuffer(raw), userID))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var debtor models.DebtorDB
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&debtor))
	assert.Equal(t, debtorID, debtor.DebtorID)
}

func TestGetDebtorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	debtorID := uuid.New()

	tests := []struct {
		name          string
		mockSetup     func(m *MockDebtorManager)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(m *MockDebtorManager) {
				m.EXPECT().Get(gomock.Any(), userID, debtorID).
					Return(&models.DebtorDB{DebtorID: debtorID, UserID: userID, Name: "Alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			mockSetup: func(m *MockDebtorManager) {
				m.EXPECT().Get(gomock.Any(), userID, debtorID).Return(nil, services.ErrDebtorNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Debtor not found",
		},
		{
			name: "another user's debtor",
			mockSetup: func(m *MockDebtorManager) {
				m.EXPECT().Get(gomock.Any(), userID, debtorID).Return(nil, services.ErrDebtorAccessDenied)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "You can't access another user's debtor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDebtorManager(ctrl)
			tt.mockSetup(mockSvc)

			rec := serveWithParams(http.MethodGet, "/users/debtors/{id}", NewGetDebtorHandler(mockSvc),
				authedRequest(http.MethodGet, "/users/debtors/"+debtorID.String(), nil, userID))

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestGetDebtorHandler_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDebtorManager(ctrl)

	rec := serveWithParams(http.MethodGet, "/users/debtors/{id}", NewGetDebtorHandler(mockSvc),
		authedRequest(http.MethodGet, "/users/debtors/not-a-uuid", nil, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateDebtorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	debtorID := uuid.New()
	newColor := "#00ff00"

	mockSvc := NewMockDebtorManager(ctrl)
	mockSvc.EXPECT().Update(gomock.Any(), userID, debtorID, gomock.Nil(), gomock.Any()).
		Return(&models.DebtorDB{DebtorID: debtorID, UserID: userID, Name: "Alice", Color: newColor}, nil)

	raw, _ := json.Marshal(UpdateDebtorRequest{Color: &newColor})
	rec := serveWithParams(http.MethodPut, "/users/debtors/{id}", NewUpdateDebtorHandler(mockSvc),
		authedRequest(http.MethodPut, "/users/debtors/"+debtorID.String(), bytes.NewBuffer(raw), userID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteDebtorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	debtorID := uuid.New()

	mockSvc := NewMockDebtorManager(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), userID, debtorID).Return(nil)

	rec := serveWithParams(http.MethodDelete, "/users/debtors/{id}", NewDeleteDebtorHandler(mockSvc),
		authedRequest(http.MethodDelete, "/users/debtors/"+debtorID.String(), nil, userID))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
