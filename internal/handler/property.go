package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
	"github.com/Neeraj-Gupta12/PropBot/internal/service"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	properties      *service.PropertyService
	suggestions     *service.SuggestionResolver
	defaultPageSize int
	maxPageSize     int
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties *service.PropertyService, suggestions *service.SuggestionResolver, defaultPageSize, maxPageSize int) *PropertyHandler {
	return &PropertyHandler{
		properties:      properties,
		suggestions:     suggestions,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// GetAll handles GET /api/properties/all
func (h *PropertyHandler) GetAll(c *gin.Context) {
	properties := h.properties.All()
	c.JSON(http.StatusOK, model.PropertiesResponse{
		Success:    true,
		Count:      len(properties),
		Properties: properties,
	})
}

// Get handles GET /api/property/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.properties.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Message: "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.PropertyResponse{Success: true, Property: property})
}

// Filter handles GET /api/properties/filter
func (h *PropertyHandler) Filter(c *gin.Context) {
	spec := h.filterSpecFromQuery(c)

	page := intParam(c, "page", 1)
	pageSize := intParam(c, "pageSize", h.defaultPageSize)
	if pageSize > h.maxPageSize {
		pageSize = h.maxPageSize
	}

	result := h.properties.Filter(c.Request.Context(), spec, page, pageSize)
	c.JSON(http.StatusOK, model.PropertiesResponse{
		Success:    true,
		Count:      result.TotalCount,
		TotalPages: result.TotalPages,
		Properties: result.Items,
	})
}

// Suggest handles GET /api/chatbot/suggestion
func (h *PropertyHandler) Suggest(c *gin.Context) {
	spec, err := h.suggestions.Resolve(c.Query("suggestion"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: err.Error()})
		return
	}

	properties := h.properties.FilterAll(c.Request.Context(), spec)
	c.JSON(http.StatusOK, model.PropertiesResponse{
		Success:    true,
		Count:      len(properties),
		Properties: properties,
	})
}

// Suggestions handles GET /api/chatbot/chat/suggestions
func (h *PropertyHandler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, model.SuggestionsResponse{
		Success:     true,
		Suggestions: h.suggestions.Suggestions(),
	})
}

// Reload handles POST /api/admin/reload
func (h *PropertyHandler) Reload(c *gin.Context) {
	rebuilt, count, err := h.properties.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "Failed to reload catalog: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.ReloadResponse{Success: true, Rebuilt: rebuilt, Count: count})
}

// filterSpecFromQuery maps the direct-filter query parameters onto a
// FilterSpec. Locations and amenities accept repeated params or one
// comma-separated value; bedrooms here is a minimum, unlike the NL path.
func (h *PropertyHandler) filterSpecFromQuery(c *gin.Context) *model.FilterSpec {
	spec := &model.FilterSpec{
		Types:     listParam(c, "type"),
		Locations: listParam(c, "location"),
		Amenities: listParam(c, "amenities"),
		Keyword:   strings.TrimSpace(c.Query("keyword")),
		PriceMin:  floatParam(c, "minPrice"),
		PriceMax:  floatParam(c, "maxPrice"),
		SizeMin:   floatParam(c, "minSize"),
		SizeMax:   floatParam(c, "maxSize"),
	}

	if v := floatParam(c, "minRating"); v != nil {
		spec.MinRating = *v
	}
	if v := intParamPtr(c, "bedrooms"); v != nil {
		spec.Bedrooms = v
	}
	if v := intParamPtr(c, "bathrooms"); v != nil {
		spec.Bathrooms = v
	}

	sort := &model.SortSpec{
		Price: sortParam(c, "sortPrice"),
		Date:  sortParam(c, "sortDate"),
	}
	if !sort.IsZero() {
		spec.Sort = sort
	}

	return spec
}

// listParam collects repeated query params and splits comma-separated
// values, dropping empties.
func listParam(c *gin.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func floatParam(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intParamPtr(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func intParam(c *gin.Context, name string, fallback int) int {
	if v := intParamPtr(c, name); v != nil && *v > 0 {
		return *v
	}
	return fallback
}

func sortParam(c *gin.Context, name string) string {
	switch strings.ToLower(c.Query(name)) {
	case model.SortAsc:
		return model.SortAsc
	case model.SortDesc:
		return model.SortDesc
	default:
		return ""
	}
}
