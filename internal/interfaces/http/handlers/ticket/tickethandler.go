package ticket

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	accountusecases "reinkjet/internal/application/account/usecases"
	"reinkjet/internal/application/ticket/usecases"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
	"reinkjet/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	closeTicketUC   usecases.CloseTicketExecutor
	rateTicketUC    usecases.RateTicketExecutor
	addAttachmentUC usecases.AddAttachmentExecutor
	getStatsUC      usecases.GetTicketStatsExecutor
	getProfileUC    accountusecases.GetProfileExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	rateTicketUC usecases.RateTicketExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	getStatsUC usecases.GetTicketStatsExecutor,
	getProfileUC accountusecases.GetProfileExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		updateTicketUC:  updateTicketUC,
		closeTicketUC:   closeTicketUC,
		rateTicketUC:    rateTicketUC,
		addAttachmentUC: addAttachmentUC,
		getStatsUC:      getStatsUC,
		getProfileUC:    getProfileUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	// The notification email names the requester, so resolve the profile
	// before creating the ticket.
	var accountName, companyName string
	profile, err := h.getProfileUC.Execute(c.Request.Context(), accountusecases.GetProfileQuery{
		AccountID: accountID.(uint),
	})
	if err == nil {
		accountName = profile.FullName
		companyName = profile.CompanyName
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(),
		req.ToCommand(accountID.(uint), accountName, companyName))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		AccountID: accountID.(uint),
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(accountID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, accountID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The rating body is optional on close; an empty body reads as io.EOF.
	var req CloseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		AccountID: accountID.(uint),
		TicketID:  ticketID,
		Rating:    req.Rating,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed successfully", result)
}

// RateTicket handles POST /tickets/:id/rating
func (h *TicketHandler) RateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.rateTicketUC.Execute(c.Request.Context(), usecases.RateTicketCommand{
		AccountID: accountID.(uint),
		TicketID:  ticketID,
		Rating:    req.Rating,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket rated successfully", result)
}

// AddAttachment handles POST /tickets/:id/attachments
func (h *TicketHandler) AddAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		AccountID:    accountID.(uint),
		TicketID:     ticketID,
		Content:      file,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// GetStats handles GET /tickets/stats
func (h *TicketHandler) GetStats(c *gin.Context) {
	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetTicketStatsQuery{
		AccountID: accountID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
