package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sparkd_server/models"
	"sparkd_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationStore struct {
	notifications []models.Notification
	listErr       error
	markReadErr   error
	readIDs       []string
}

func (s *stubNotificationStore) PutNotification(_ context.Context, _ *models.Notification) error {
	return nil
}

func (s *stubNotificationStore) ListForUser(_ context.Context, _ string, _ int32) ([]models.Notification, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.notifications, nil
}

func (s *stubNotificationStore) MarkRead(_ context.Context, _, notificationID string) error {
	if s.markReadErr != nil {
		return s.markReadErr
	}
	s.readIDs = append(s.readIDs, notificationID)
	return nil
}

func markRead(t *testing.T, store services.NotificationStore, notificationID, userID string) *httptest.ResponseRecorder {
	t.Helper()
	controller := NewNotificationController(store, NewHeaderIdentityResolver())

	request := httptest.NewRequest(http.MethodPatch, "/api/notifications/"+notificationID+"/read", nil)
	request = mux.SetURLVars(request, map[string]string{"notificationId": notificationID})
	if userID != "" {
		request.Header.Set(DefaultIdentityHeader, userID)
	}
	recorder := httptest.NewRecorder()
	controller.HandleMarkRead(recorder, request)
	return recorder
}

func TestHandleMarkReadSuccess(t *testing.T) {
	store := &stubNotificationStore{}

	recorder := markRead(t, store, "n1", "u1")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"n1"}, store.readIDs)
}

func TestHandleMarkReadUnknownIDReturns404(t *testing.T) {
	store := &stubNotificationStore{markReadErr: services.NewNotFoundError("notification n-missing not found for u1")}

	recorder := markRead(t, store, "n-missing", "u1")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Empty(t, store.readIDs)
}

func TestHandleMarkReadStoreFailureReturns503(t *testing.T) {
	store := &stubNotificationStore{markReadErr: services.NewTransientStoreError(errors.New("table down"), "update failed")}

	recorder := markRead(t, store, "n1", "u1")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestHandleMarkReadMissingIdentity(t *testing.T) {
	recorder := markRead(t, &stubNotificationStore{}, "n1", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandleListNotifications(t *testing.T) {
	store := &stubNotificationStore{notifications: []models.Notification{
		{NotificationID: "n1", RecipientID: "u1", Type: models.NotificationTypeMatch},
	}}
	controller := NewNotificationController(store, NewHeaderIdentityResolver())

	request := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	request.Header.Set(DefaultIdentityHeader, "u1")
	recorder := httptest.NewRecorder()
	controller.HandleListNotifications(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "n1")
}

func TestHandleListNotificationsStoreFailureReturns503(t *testing.T) {
	store := &stubNotificationStore{listErr: services.NewTransientStoreError(errors.New("table down"), "query failed")}
	controller := NewNotificationController(store, NewHeaderIdentityResolver())

	request := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	request.Header.Set(DefaultIdentityHeader, "u1")
	recorder := httptest.NewRecorder()
	controller.HandleListNotifications(recorder, request)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
