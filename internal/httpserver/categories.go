package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"category-service/internal/domain"
	categorysvc "category-service/internal/service/category"
	"github.com/gin-gonic/gin"
)

const (
	internalErrorMessage = "Internal Server Error"
	notFoundMessage      = "Category not found"
	invalidJSONMessage   = "Invalid JSON"
	invalidDataMessage   = "Invalid data"
)

type messageBody struct {
	Message string `json:"message"`
}

type validationBody struct {
	Error  string                  `json:"error"`
	Errors *categorysvc.Violations `json:"errors"`
}

type categoryHandler struct {
	svc CategoryService
}

func (h *categoryHandler) list(c *gin.Context) {
	limit := queryInt(c, "limit", categorysvc.DefaultLimit)
	offset := queryInt(c, "offset", 0)

	categories, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *categoryHandler) get(c *gin.Context) {
	category, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *categoryHandler) create(c *gin.Context) {
	in, ok := h.decode(c)
	if !ok {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *categoryHandler) update(c *gin.Context) {
	if _, ok := h.lookup(c); !ok {
		return
	}
	in, ok := h.decode(c)
	if !ok {
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), in, c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, messageBody{Message: notFoundMessage})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *categoryHandler) delete(c *gin.Context) {
	if _, ok := h.lookup(c); !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, messageBody{Message: notFoundMessage})
			return
		}
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// lookup is the existence pre-check shared by the slug routes.
func (h *categoryHandler) lookup(c *gin.Context) (*domain.Category, bool) {
	category, err := h.svc.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, messageBody{Message: notFoundMessage})
			return nil, false
		}
		_ = c.Error(err)
		return nil, false
	}
	return category, true
}

func (h *categoryHandler) decode(c *gin.Context) (domain.CategoryInput, bool) {
	payload, err := decodeJSON(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, messageBody{Message: invalidJSONMessage})
		return domain.CategoryInput{}, false
	}

	in, violations := h.svc.Validate(payload)
	if violations != nil {
		c.JSON(http.StatusBadRequest, validationBody{Error: invalidDataMessage, Errors: violations})
		return domain.CategoryInput{}, false
	}
	return in, true
}

// decodeJSON reads the whole body as exactly one JSON value.
func decodeJSON(c *gin.Context) (any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return payload, nil
}

func queryInt(c *gin.Context, key string, def int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
