package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reprova/reprova/internal/domain"
)

// Fixed response bodies, rendered as JSON strings
const (
	msgOK           = "Ok"
	msgInvalid      = "Invalid request"
	msgUnauthorized = "Unauthorized"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service domain.QuestionService
	token   string
}

// NewQuestionHandler creates a new question handler. The token is the shared
// secret gating write access and private-record reads.
func NewQuestionHandler(service domain.QuestionService, token string) *QuestionHandler {
	return &QuestionHandler{
		service: service,
		token:   token,
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	q := e.Group("/api/questions")
	q.GET("", h.Get)
	q.POST("", h.Post)
	q.PUT("", h.Put)
	q.DELETE("", h.Delete)
}

// authorized checks whether the given token matches the shared secret
func (h *QuestionHandler) authorized(token string) bool {
	return token == h.token
}

// Get lists all questions, or a single question if an 'id' query parameter is
// provided. The variant is decided once here; each variant has its own method.
func (h *QuestionHandler) Get(c echo.Context) error {
	auth := h.authorized(c.QueryParam("token"))

	if id := c.QueryParam("id"); id != "" {
		return h.getByID(c, id, auth)
	}
	return h.getAll(c, auth)
}

// getByID fetches the specified question. Private questions require the token.
func (h *QuestionHandler) getByID(c echo.Context, id string, auth bool) error {
	question, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return c.JSON(http.StatusBadRequest, msgInvalid)
		}
		return err
	}

	if question.Pvt && !auth {
		return c.JSON(http.StatusForbidden, msgUnauthorized)
	}

	return c.JSON(http.StatusOK, question)
}

// getAll fetches all questions, restricted to public ones without the token
func (h *QuestionHandler) getAll(c echo.Context, auth bool) error {
	questions, err := h.service.GetAll(c.Request().Context(), auth)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, questions)
}

// Post adds a new question supplied in the request body.
// This endpoint is for authorized access only.
func (h *QuestionHandler) Post(c echo.Context) error {
	if !h.authorized(c.QueryParam("token")) {
		return c.JSON(http.StatusForbidden, msgUnauthorized)
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, msgInvalid)
	}

	if err := h.service.Create(c.Request().Context(), payload); err != nil {
		return c.JSON(http.StatusBadRequest, msgInvalid)
	}

	return c.JSON(http.StatusOK, msgOK)
}

// Put replaces the question with the given 'id' by the one in the request body.
// This endpoint is for authorized access only.
func (h *QuestionHandler) Put(c echo.Context) error {
	if !h.authorized(c.QueryParam("token")) {
		return c.JSON(http.StatusForbidden, msgUnauthorized)
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, msgInvalid)
	}

	if err := h.service.Update(c.Request().Context(), c.QueryParam("id"), payload); err != nil {
		return c.JSON(http.StatusBadRequest, msgInvalid)
	}

	return c.JSON(http.StatusOK, msgOK)
}

// Delete removes the question with the given 'id' query parameter.
// This endpoint is for authorized access only.
func (h *QuestionHandler) Delete(c echo.Context) error {
	if !h.authorized(c.QueryParam("token")) {
		return c.JSON(http.StatusForbidden, msgUnauthorized)
	}

	if err := h.service.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return c.JSON(http.StatusBadRequest, msgInvalid)
	}

	return c.JSON(http.StatusOK, msgOK)
}
