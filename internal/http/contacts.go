package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lanternworks/rolodex/internal/domain"
	"github.com/lanternworks/rolodex/internal/service"
	"github.com/lanternworks/rolodex/internal/store"
	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
	"github.com/lanternworks/rolodex/pkg/slogx"
)

// ContactsHandler serves the /v1/contacts CRUD endpoints. Every operation
// is scoped to the authenticated owner; a contact belonging to someone else
// is indistinguishable from one that does not exist.
type ContactsHandler struct {
	ContactService *service.ContactService
}

func contactResponse(c domain.Contact) rolodexsdk.ContactResponse {
	return rolodexsdk.ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func decodeContactRequest(r *http.Request) (service.ContactInput, bool) {
	var req rolodexsdk.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.ContactInput{}, false
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	if req.FirstName == "" {
		return service.ContactInput{}, false
	}

	return service.ContactInput{
		FirstName: req.FirstName,
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
	}, true
}

// HandleCreate godoc
//
//	@Summary		Create a contact
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		rolodexsdk.ContactRequest	true	"contact fields; first_name is required"
//	@Success		201		{object}	rolodexsdk.ContactResponse	"the created contact"
//	@Failure		400		{object}	rolodexsdk.ErrorResponse	"invalid request"
//	@Failure		401		{object}	rolodexsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/contacts [post].
func (h *ContactsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	u, ok := UserFromCtx(ctx)
	if !ok {
		rolodexsdk.ErrInvalidToken.WriteError(w)
		return
	}

	in, ok := decodeContactRequest(r)
	if !ok {
		rolodexsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	c, err := h.ContactService.Create(ctx, u.ID, in)
	if err != nil {
		log.Error("failed to create contact", "err", err)
		rolodexsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, contactResponse(c))
}

// HandleList godoc
//
//	@Summary		List contacts
//	@Description	Returns the caller's contacts, newest first.
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int								false	"page size (default 100, max 500)"
//	@Param			offset	query		int								false	"rows to skip"
//	@Success		200		{object}	rolodexsdk.ContactListResponse	"contacts, limit, offset"
//	@Failure		401		{object}	rolodexsdk.ErrorResponse		"invalid or missing access token"
//	@Router			/v1/contacts [get].
func (h *ContactsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	u, ok := UserFromCtx(ctx)
	if !ok {
		rolodexsdk.ErrInvalidToken.WriteError(w)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	contacts, err := h.ContactService.List(ctx, u.ID, limit, offset)
	if err != nil {
		log.Error("failed to list contacts", "err", err)
		rolodexsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]rolodexsdk.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactResponse(c))
	}

	httpx.WriteJSON(w, http.StatusOK, rolodexsdk.ContactListResponse{
		Contacts: out,
		Limit:    limit,
		Offset:   offset,
	})
}

// HandleGet godoc
//
//	@Summary		Get a contact
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"contact ID"
//	@Success		200	{object}	rolodexsdk.ContactResponse	"the contact"
//	@Failure		401	{object}	rolodexsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		404	{object}	rolodexsdk.ErrorResponse	"contact not found"
//	@Router			/v1/contacts/{id} [get].
func (h *ContactsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	u, ok := UserFromCtx(ctx)
	if !ok {
		rolodexsdk.ErrInvalidToken.WriteError(w)
		return
	}

	c, err := h.ContactService.Get(ctx, u.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rolodexsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load contact", "err", err)
		rolodexsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, contactResponse(c))
}

// HandleUpdate godoc
//
//	@Summary		Update a contact
//	@Description	Replaces the editable fields of a contact.
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"contact ID"
//	@Param			body	body		rolodexsdk.ContactRequest	true	"contact fields; first_name is required"
//	@Success		200		{object}	rolodexsdk.ContactResponse	"the updated contact"
//	@Failure		400		{object}	rolodexsdk.ErrorResponse	"invalid request"
//	@Failure		401		{object}	rolodexsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		404		{object}	rolodexsdk.ErrorResponse	"contact not found"
//	@Router			/v1/contacts/{id} [put].
func (h *ContactsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	u, ok := UserFromCtx(ctx)
	if !ok {
		rolodexsdk.ErrInvalidToken.WriteError(w)
		return
	}

	in, ok := decodeContactRequest(r)
	if !ok {
		rolodexsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	c, err := h.ContactService.Update(ctx, u.ID, r.PathValue("id"), in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rolodexsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to update contact", "err", err)
		rolodexsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, contactResponse(c))
}

// HandleDelete godoc
//
//	@Summary		Delete a contact
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"contact ID"
//	@Success		204	"contact deleted"
//	@Failure		401	{object}	rolodexsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		404	{object}	rolodexsdk.ErrorResponse	"contact not found"
//	@Router			/v1/contacts/{id} [delete].
func (h *ContactsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	u, ok := UserFromCtx(ctx)
	if !ok {
		rolodexsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.ContactService.Delete(ctx, u.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rolodexsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to delete contact", "err", err)
		rolodexsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
