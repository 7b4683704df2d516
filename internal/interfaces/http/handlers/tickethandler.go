package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/ticket/usecases"
	"litrevu/internal/infrastructure/storage"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUseCase *usecases.CreateTicketUseCase
	getTicketUseCase    *usecases.GetTicketUseCase
	updateTicketUseCase *usecases.UpdateTicketUseCase
	deleteTicketUseCase *usecases.DeleteTicketUseCase
	dto                 *DTOBuilder
	mediaConfig         config.MediaConfig
	logger              logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	dto *DTOBuilder,
	mediaConfig config.MediaConfig,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUseCase: createUC,
		getTicketUseCase:    getUC,
		updateTicketUseCase: updateUC,
		deleteTicketUseCase: deleteUC,
		dto:                 dto,
		mediaConfig:         mediaConfig,
		logger:              logger,
	}
}

type TicketForm struct {
	Title       string `form:"title" binding:"required,max=128"`
	Description string `form:"description" binding:"max=2048"`
}

type UpdateTicketForm struct {
	Title       string `form:"title" binding:"required,max=128"`
	Description string `form:"description" binding:"max=2048"`
	ClearImage  bool   `form:"clear_image"`
}

// openUpload validates and opens the optional "image" form file. A nil
// reader with a nil error means no file was submitted.
func (h *TicketHandler) openUpload(c *gin.Context) (string, io.ReadCloser, error) {
	fileHeader, err := c.FormFile("image")
	if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
		if err == multipart.ErrMessageTooLarge {
			return "", nil, err
		}
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	if h.mediaConfig.MaxUploadBytes > 0 && fileHeader.Size > h.mediaConfig.MaxUploadBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "image is too large")
		return "", nil, errHandled
	}
	if !storage.IsAllowedExtension(fileHeader.Filename) {
		utils.ErrorResponse(c, http.StatusBadRequest, "unsupported image type")
		return "", nil, errHandled
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, file, nil
}

// Create handles POST /tickets/add (multipart form).
func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var form TicketForm
	if err := c.ShouldBind(&form); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	imageName, imageData, err := h.openUpload(c)
	if err == errHandled {
		return
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read image upload")
		return
	}
	if imageData != nil {
		defer imageData.Close()
	}

	cmd := usecases.CreateTicketCommand{
		Title:       form.Title,
		Description: form.Description,
		OwnerID:     userID,
		ImageName:   imageName,
	}
	if imageData != nil {
		cmd.ImageData = imageData
	}

	result, err := h.createTicketUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, h.dto.Ticket(result.Ticket, nil), "ticket created")
}

// Get handles GET /tickets/:id. It also serves the GET variants of the
// update and delete routes, where the current state pre-fills the form.
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	result, err := h.getTicketUseCase.Execute(c.Request.Context(), usecases.GetTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketDTO := h.dto.Ticket(result.Ticket, result.Owner)
	var reviewDTO interface{}
	if result.Review != nil {
		reviewDTO = h.dto.Review(result.Review, result.Reviewer, ticketDTO)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket": ticketDTO,
		"review": reviewDTO,
	})
}

// ReviewContext handles GET /tickets/:id/review/add: the ticket a review
// would attach to, plus whether one already exists.
func (h *TicketHandler) ReviewContext(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	result, err := h.getTicketUseCase.Execute(c.Request.Context(), usecases.GetTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket":        h.dto.Ticket(result.Ticket, result.Owner),
		"review_exists": result.Review != nil,
	})
}

// Update handles POST /tickets/:id/update (multipart form).
func (h *TicketHandler) Update(c *gin.Context) {
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

	var form UpdateTicketForm
	if err := c.ShouldBind(&form); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	imageName, imageData, err := h.openUpload(c)
	if err == errHandled {
		return
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read image upload")
		return
	}
	if imageData != nil {
		defer imageData.Close()
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ActorID:     userID,
		Title:       form.Title,
		Description: form.Description,
		ClearImage:  form.ClearImage,
		ImageName:   imageName,
	}
	if imageData != nil {
		cmd.ImageData = imageData
	}

	result, err := h.updateTicketUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", h.dto.Ticket(result.Ticket, nil))
}

// Delete handles POST /tickets/:id/delete.
func (h *TicketHandler) Delete(c *gin.Context) {
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

	if err := h.deleteTicketUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		ActorID:  userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
