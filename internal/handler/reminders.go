package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/medsystem/medsystem/internal/middleware"
	"github.com/medsystem/medsystem/internal/service"
)

// SendReminders runs the daily reminder batch. Only GET is accepted; the
// route is registered without a method so other verbs get the JSON 405.
func (h *Handler) SendReminders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	// A dropped cron connection must not cut a batch short
	ctx := context.WithoutCancel(r.Context())
	if timeout := h.cfg.Reminder.RunTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	report, err := h.reminders.SendDailyReminders(ctx)
	if err != nil {
		h.log.WithRequestID(middleware.GetRequestID(r.Context())).Error().Err(err).Msg("reminder run failed")
		writeError(w, http.StatusInternalServerError, errorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// errorMessage returns the text sent to cron callers. Store failures carry
// the data store's own message.
func errorMessage(err error) string {
	var storeErr *service.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Cause()
	}
	return err.Error()
}
