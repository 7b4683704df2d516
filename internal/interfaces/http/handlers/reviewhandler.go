package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/review/usecases"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type ReviewHandler struct {
	createReviewUseCase           *usecases.CreateReviewUseCase
	createTicketWithReviewUseCase *usecases.CreateTicketWithReviewUseCase
	getReviewUseCase              *usecases.GetReviewUseCase
	updateReviewUseCase           *usecases.UpdateReviewUseCase
	deleteReviewUseCase           *usecases.DeleteReviewUseCase
	dto                           *DTOBuilder
	logger                        logger.Interface
}

func NewReviewHandler(
	createUC *usecases.CreateReviewUseCase,
	createWithTicketUC *usecases.CreateTicketWithReviewUseCase,
	getUC *usecases.GetReviewUseCase,
	updateUC *usecases.UpdateReviewUseCase,
	deleteUC *usecases.DeleteReviewUseCase,
	dto *DTOBuilder,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUseCase:           createUC,
		createTicketWithReviewUseCase: createWithTicketUC,
		getReviewUseCase:              getUC,
		updateReviewUseCase:           updateUC,
		deleteReviewUseCase:           deleteUC,
		dto:                           dto,
		logger:                        logger,
	}
}

type ReviewForm struct {
	Headline string `json:"headline" binding:"required" validate:"required,max=128"`
	Rating   *int   `json:"rating" binding:"required" validate:"required,min=0,max=5"`
	Body     string `json:"body" validate:"max=8192"`
}

type TicketWithReviewRequest struct {
	Title       string `json:"title" binding:"required" validate:"required,max=128"`
	Description string `json:"description" validate:"max=2048"`
	Headline    string `json:"headline" binding:"required" validate:"required,max=128"`
	Rating      *int   `json:"rating" binding:"required" validate:"required,min=0,max=5"`
	Body        string `json:"body" validate:"max=8192"`
}

// Create handles POST /tickets/:id/review/add.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var req ReviewForm
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createReviewUseCase.Execute(c.Request.Context(), usecases.CreateReviewCommand{
		TicketID: ticketID,
		Headline: req.Headline,
		Rating:   *req.Rating,
		Body:     req.Body,
		OwnerID:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketDTO := h.dto.Ticket(result.Ticket, nil)
	utils.CreatedResponse(c, h.dto.Review(result.Review, nil, ticketDTO), "review created")
}

// CreateWithTicket handles POST /tickets/review/add: a new ticket and its
// review submitted in one step.
func (h *ReviewHandler) CreateWithTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req TicketWithReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketWithReviewUseCase.Execute(c.Request.Context(), usecases.CreateTicketWithReviewCommand{
		Title:       req.Title,
		Description: req.Description,
		Headline:    req.Headline,
		Rating:      *req.Rating,
		Body:        req.Body,
		OwnerID:     userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketDTO := h.dto.Ticket(result.Ticket, nil)
	utils.CreatedResponse(c, h.dto.Review(result.Review, nil, ticketDTO), "review created")
}

// Get serves the GET variants of the review update and delete routes,
// returning the review with its parent ticket for pre-fill.
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid review id")
		return
	}

	result, err := h.getReviewUseCase.Execute(c.Request.Context(), usecases.GetReviewCommand{ReviewID: reviewID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketDTO := h.dto.Ticket(result.Ticket, nil)
	utils.SuccessResponse(c, http.StatusOK, "", h.dto.Review(result.Review, nil, ticketDTO))
}

// Update handles POST /review/:id/update.
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	reviewID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var req ReviewForm
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateReviewUseCase.Execute(c.Request.Context(), usecases.UpdateReviewCommand{
		ReviewID: reviewID,
		ActorID:  userID,
		Headline: req.Headline,
		Rating:   *req.Rating,
		Body:     req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review updated", h.dto.Review(result.Review, nil, nil))
}

// Delete handles POST /review/:id/delete.
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	reviewID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid review id")
		return
	}

	if err := h.deleteReviewUseCase.Execute(c.Request.Context(), usecases.DeleteReviewCommand{
		ReviewID: reviewID,
		ActorID:  userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
