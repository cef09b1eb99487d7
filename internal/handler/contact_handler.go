package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/contract"
	"github.com/portfolio/backend/internal/metrics"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// maxBodyBytes comfortably fits the largest valid submission.
const maxBodyBytes = 64 << 10

// ContactHandler handles contact form submission and inbox listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create handles POST /api/contact.
// Returns 201 with the stored message, or 400 naming the first invalid field.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	in, err := contract.DecodeCreateInput(r.Body)
	if err != nil {
		writeCreateError(w, r, err)
		return
	}

	msg, err := h.contactService.Create(ctx, in)
	if err != nil {
		writeCreateError(w, r, err)
		return
	}

	metrics.ContactMessagesCreated.Inc()
	slog.InfoContext(ctx, "contact message created", "id", msg.ID)
	writeJSON(w, http.StatusCreated, msg)
}

// writeCreateError maps validation failures to 400 and anything else to 500.
func writeCreateError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	var vErr *contract.ValidationError
	if errors.As(err, &vErr) {
		metrics.ContactValidationFailures.WithLabelValues(vErr.Field).Inc()
		slog.DebugContext(ctx, "contact message rejected", "field", vErr.Field, "reason", vErr.Message)
		writeJSON(w, http.StatusBadRequest, vErr)
		return
	}

	metrics.ContactStoreErrors.WithLabelValues("create").Inc()
	slog.ErrorContext(ctx, "create contact message failed", "error", err)
	writeMessage(w, http.StatusInternalServerError, "Failed to send message")
}

// List handles GET /api/contact.
// Optional query params: q (substring search), order=newest.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opts := model.ContactListOptions{
		Query:       r.URL.Query().Get("q"),
		NewestFirst: r.URL.Query().Get("order") == "newest",
	}

	messages, err := h.contactService.List(ctx, opts)
	if err != nil {
		metrics.ContactStoreErrors.WithLabelValues("list").Inc()
		slog.ErrorContext(ctx, "list contact messages failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
