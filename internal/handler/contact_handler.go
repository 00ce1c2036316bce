package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"contactbook/internal/auth"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/service"
)

// ContactHandler handles the owner-scoped contact endpoints. All routes sit
// behind the auth middleware.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest represents a new contact. The owner is never part of
// the body; it comes from the verified token.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Image   string `json:"image" validate:"omitempty,max=2048"`
}

// UpdateContactRequest represents a partial update. Absent fields are left
// unchanged; name may not be blanked.
type UpdateContactRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email   *string `json:"email" validate:"omitempty,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Image   *string `json:"image" validate:"omitempty,max=2048"`
}

// CreateContactResponse is returned after a contact is stored.
type CreateContactResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// ListContacts godoc
// @Summary List the caller's contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Contact
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return respondError(err)
	}

	contacts, err := h.contactService.List(c.Request().Context(), ownerID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, contacts)
}

// CreateContact godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateContactRequest true "Contact"
// @Success 200 {object} CreateContactResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return respondError(err)
	}

	var req CreateContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.contactService.Create(c.Request().Context(), ownerID, service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Image:   req.Image,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, CreateContactResponse{Message: "Contact Created!", ID: contact.ID})
}

// GetContact godoc
// @Summary Get one of the caller's contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	ownerID, id, err := scopedID(c)
	if err != nil {
		return respondError(err)
	}

	contact, err := h.contactService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, contact)
}

// UpdateContact godoc
// @Summary Partially update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param request body UpdateContactRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts/{id} [patch]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	ownerID, id, err := scopedID(c)
	if err != nil {
		return respondError(err)
	}

	var req UpdateContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Email != nil && *req.Email != "" {
		if err := c.Validate(struct {
			Email string `validate:"email"`
		}{*req.Email}); err != nil {
			return respondError(fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
	}

	err = h.contactService.Update(c.Request().Context(), ownerID, id, service.ContactPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Image:   req.Image,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Contact Updated!"})
}

// DeleteContact godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	ownerID, id, err := scopedID(c)
	if err != nil {
		return respondError(err)
	}

	if err := h.contactService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Contact Deleted!"})
}

// callerID returns the identity the auth middleware verified.
func callerID(c echo.Context) (uuid.UUID, error) {
	claims := auth.CurrentClaims(c)
	if claims == nil {
		return uuid.Nil, apperrors.ErrUnauthenticated
	}
	id, err := claims.IdentityID()
	if err != nil {
		return uuid.Nil, apperrors.ErrForbidden
	}
	return id, nil
}

// scopedID returns the caller and the contact id from the path. An id that
// is not a UUID cannot name any contact, so it is reported as not found.
func scopedID(c echo.Context) (ownerID, id uuid.UUID, err error) {
	ownerID, err = callerID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err = uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperrors.ErrContactNotFound
	}
	return ownerID, id, nil
}
