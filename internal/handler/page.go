package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/page-index-service/internal/model"
	"github.com/maxviazov/page-index-service/internal/service"
	"github.com/maxviazov/page-index-service/pkg/response"
)

const (
	serviceTimeout       = 5 * time.Second
	fallbackItemsPerPage = 10
	queryParamPage       = "page"
	queryParamPerPage    = "per_page"
)

type PageHandler struct {
	svc            service.PageService
	defaultPerPage int
}

// NewPageHandler wires the page endpoints. defaultPerPage is used when a GET
// request omits per_page; values < 1 fall back to 10.
func NewPageHandler(svc service.PageService, defaultPerPage int) *PageHandler {
	if defaultPerPage < 1 {
		defaultPerPage = fallbackItemsPerPage
	}
	return &PageHandler{svc: svc, defaultPerPage: defaultPerPage}
}

func (h *PageHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/pages")
	{
		g.GET("/indices", h.indicesFromQuery)
		g.POST("/indices", h.indicesFromBody)
		g.GET("/window", h.window)
	}
}

func (h *PageHandler) indicesFromQuery(c *gin.Context) {
	req, err := h.parseQuery(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	h.writeIndices(c, req)
}

func (h *PageHandler) indicesFromBody(c *gin.Context) {
	var req model.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// parse details stay internal; the client only learns the body is unusable
		response.WriteError(c, service.NewInvalidArgument([]service.FieldError{{Field: "body", Message: "must be a JSON object with integer fields"}}))
		return
	}
	h.writeIndices(c, req)
}

func (h *PageHandler) writeIndices(c *gin.Context, req model.PageRequest) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	res, err := h.svc.CalculateIndices(ctx, req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *PageHandler) window(c *gin.Context) {
	req, err := h.parseQuery(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	res, err := h.svc.Window(ctx, req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *PageHandler) parseQuery(c *gin.Context) (model.PageRequest, error) {
	var ferrs []service.FieldError
	page, ok := intQuery(c, queryParamPage, 1)
	if !ok {
		ferrs = append(ferrs, service.FieldError{Field: queryParamPage, Message: "must be an integer"})
	}
	perPage, ok := intQuery(c, queryParamPerPage, h.defaultPerPage)
	if !ok {
		ferrs = append(ferrs, service.FieldError{Field: queryParamPerPage, Message: "must be an integer"})
	}
	if err := service.NewInvalidArgument(ferrs); err != nil {
		return model.PageRequest{}, err
	}
	return model.PageRequest{CurrentPage: page, ItemsPerPage: perPage}, nil
}

// intQuery reads an integer query parameter; absent or blank values yield def.
func intQuery(c *gin.Context, key string, def int) (int, bool) {
	raw, ok := c.GetQuery(key)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
