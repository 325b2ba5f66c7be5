package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/favqs-quotes/internal/app"
	"github.com/jsamuelsen/favqs-quotes/internal/domain"
)

// View names, as referenced by the route table.
const (
	ViewQuotes = "quotes"
	ViewRandom = "random"
)

// Template names rendered by the views.
const (
	templateQuotes = "quotes.html"
	templateRandom = "random.html"
)

// QuoteHandler serves the quote views and the JSON quote API.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ViewData is what the view templates render.
// Loading and Error mirror the tracker state after the fetch completed.
type ViewData struct {
	Title    string
	Loading  bool
	Error    string
	Page     int
	PrevPage int // 0 when there is no previous page
	NextPage int // 0 when the current page is the last one
	Quotes   []map[string]any
	Qotd     map[string]any
}

// ListQuotes handles GET /api/v1/quotes?page=N.
// Returns the upstream page unmodified.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param page query int false "Page number, from 1"
// @Success 200 {object} map[string]any
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req dto.PageRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		respondBadPage(c, err)
		return
	}

	page, err := h.service.FetchQuotesPage(c.Request.Context(), req.GetPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetQotd handles GET /api/v1/qotd.
// Returns the upstream quote of the day unmodified.
//
// @Summary Get the quote of the day
// @Tags quotes
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/qotd [get]
func (h *QuoteHandler) GetQotd(c *gin.Context) {
	qotd, err := h.service.FetchQotd(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, qotd)
}

// QuotesView renders one page of quotes.
// Fetch failures are shown in the page; the response is still 200.
func (h *QuoteHandler) QuotesView(c *gin.Context) {
	var req dto.PageRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		c.HTML(http.StatusBadRequest, templateQuotes, ViewData{
			Title: "Quotes",
			Error: badPageMessage(err),
		})

		return
	}

	tracker := h.service.NewTracker()
	pageNum := req.GetPage()
	page, _ := tracker.GetPage(c.Request.Context(), pageNum)
	state := tracker.State()

	data := ViewData{
		Title:   "Quotes",
		Loading: state.Loading,
		Error:   state.Error,
		Page:    pageNum,
	}

	if page != nil {
		data.Quotes = quoteObjects(page["quotes"])

		if pageNum > 1 {
			data.PrevPage = pageNum - 1
		}

		if last, _ := page["last_page"].(bool); !last {
			data.NextPage = pageNum + 1
		}
	}

	c.HTML(http.StatusOK, templateQuotes, data)
}

// RandomView renders the quote of the day.
func (h *QuoteHandler) RandomView(c *gin.Context) {
	tracker := h.service.NewTracker()
	qotd, _ := tracker.GetQotd(c.Request.Context())
	state := tracker.State()

	data := ViewData{
		Title:   "Random quote",
		Loading: state.Loading,
		Error:   state.Error,
	}

	if qotd != nil {
		data.Qotd, _ = qotd["quote"].(map[string]any)
	}

	c.HTML(http.StatusOK, templateRandom, data)
}

// Views returns the view handlers keyed by the names the route table uses.
func (h *QuoteHandler) Views() map[string]gin.HandlerFunc {
	return map[string]gin.HandlerFunc{
		ViewQuotes: h.QuotesView,
		ViewRandom: h.RandomView,
	}
}

// RegisterQuoteRoutes registers the JSON quote API on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes", h.ListQuotes)
	rg.GET("/qotd", h.GetQotd)
}

// respondBadPage writes a 400 for an unparsable or out-of-range page parameter.
func respondBadPage(c *gin.Context, err error) {
	if dto.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	dto.HandleError(c, domain.NewValidationErrorWithValue("page", "must be a number", c.Query("page")))
}

// quoteObjects keeps the object elements of an upstream quotes list.
func quoteObjects(v any) []map[string]any {
	items, _ := v.([]any)
	quotes := make([]map[string]any, 0, len(items))

	for _, item := range items {
		if q, ok := item.(map[string]any); ok {
			quotes = append(quotes, q)
		}
	}

	return quotes
}

// badPageMessage renders the page validation failure for humans.
func badPageMessage(err error) string {
	if details := dto.ValidationErrors(err); details["page"] != "" {
		return "page " + details["page"]
	}

	if dto.IsBindingError(err) {
		return "page must be a number"
	}

	return err.Error()
}
