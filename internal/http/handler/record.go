package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"records-service/internal/domain/record"
	"records-service/internal/repository"
	apperrors "records-service/pkg/errors"
	"records-service/pkg/validator"
)

type RecordHandler struct {
	records repository.RecordRepository
}

func NewRecordHandler(records repository.RecordRepository) *RecordHandler {
	return &RecordHandler{records: records}
}

type RecordRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

func (req *RecordRequest) validate() error {
	if err := validator.Name(fieldFirstName, req.FirstName); err != nil {
		return err
	}
	if err := validator.Name(fieldLastName, req.LastName); err != nil {
		return err
	}
	return validator.Email(req.Email)
}

func (h *RecordHandler) List(c echo.Context) error {
	records, err := h.records.List(c.Request().Context())
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgListRecordsFail)
	}

	return c.JSON(http.StatusOK, records)
}

func (h *RecordHandler) Create(c echo.Context) error {
	var req RecordRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.validate(); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	rec, err := h.records.Create(c.Request().Context(), record.CreateRecordInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return respondError(c, http.StatusConflict, msgRecordEmailExists)
		}
		return respondError(c, http.StatusInternalServerError, msgCreateRecordFail)
	}

	return c.JSON(http.StatusCreated, rec)
}

func (h *RecordHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, msgInvalidRecordID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req RecordRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.validate(); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	rec, err := h.records.Update(c.Request().Context(), id, record.UpdateRecordInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgRecordNotFound)
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return respondError(c, http.StatusConflict, msgRecordEmailExists)
		}
		return respondError(c, http.StatusInternalServerError, msgUpdateRecordFail)
	}

	return c.JSON(http.StatusOK, rec)
}

func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, msgInvalidRecordID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	if err := h.records.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgRecordNotFound)
		}
		return respondError(c, http.StatusInternalServerError, msgDeleteRecordFail)
	}

	return respondMessage(c, http.StatusOK, msgRecordDeleted)
}
