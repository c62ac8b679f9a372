package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reinkjet/internal/application/notification/usecases"
	"reinkjet/internal/shared/logger"
	"reinkjet/internal/shared/utils"
)

type NotificationHandler struct {
	sendQuoteRequestUC       usecases.SendQuoteRequestExecutor
	sendContactFormUC        usecases.SendContactFormExecutor
	sendTicketNotificationUC usecases.SendTicketNotificationExecutor
	sendTestEmailUC          usecases.SendTestEmailExecutor
	logger                   logger.Interface
}

func NewNotificationHandler(
	sendQuoteRequestUC usecases.SendQuoteRequestExecutor,
	sendContactFormUC usecases.SendContactFormExecutor,
	sendTicketNotificationUC usecases.SendTicketNotificationExecutor,
	sendTestEmailUC usecases.SendTestEmailExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		sendQuoteRequestUC:       sendQuoteRequestUC,
		sendContactFormUC:        sendContactFormUC,
		sendTicketNotificationUC: sendTicketNotificationUC,
		sendTestEmailUC:          sendTestEmailUC,
		logger:                   logger.NewLogger(),
	}
}

type QuoteRequestPayload struct {
	Name        string `json:"name" binding:"required,max=120"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	Company     string `json:"company" binding:"omitempty,max=120"`
	ServiceType string `json:"service_type" binding:"omitempty,max=50"`
	Message     string `json:"message" binding:"required"`
}

type ContactFormPayload struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required"`
}

// SendQuoteRequest handles POST /notifications/quote
func (h *NotificationHandler) SendQuoteRequest(c *gin.Context) {
	var req QuoteRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for quote request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendQuoteRequestUC.Execute(c.Request.Context(), usecases.SendQuoteRequestCommand{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, gin.H{"sent": result.Success})
}

// SendContactForm handles POST /notifications/contact
func (h *NotificationHandler) SendContactForm(c *gin.Context) {
	var req ContactFormPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for contact form", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendContactFormUC.Execute(c.Request.Context(), usecases.SendContactFormCommand{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, gin.H{"sent": result.Success})
}

type TicketNotificationPayload struct {
	TicketID        string `json:"ticket_id" binding:"omitempty,max=20"`
	AccountName     string `json:"account_name" binding:"omitempty,max=120"`
	CompanyName     string `json:"company_name" binding:"omitempty,max=120"`
	EquipmentSerial string `json:"equipment_serial" binding:"required,max=50"`
	EquipmentModel  string `json:"equipment_model" binding:"omitempty,max=120"`
	ProblemType     string `json:"problem_type" binding:"required,max=50"`
	Description     string `json:"description" binding:"omitempty"`
	Priority        string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
}

// SendTicketNotification handles POST /notifications/ticket
func (h *NotificationHandler) SendTicketNotification(c *gin.Context) {
	var req TicketNotificationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ticket notification", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendTicketNotificationUC.Execute(c.Request.Context(), usecases.SendTicketNotificationCommand{
		TicketID:        req.TicketID,
		AccountName:     req.AccountName,
		CompanyName:     req.CompanyName,
		EquipmentSerial: req.EquipmentSerial,
		EquipmentModel:  req.EquipmentModel,
		ProblemType:     req.ProblemType,
		Description:     req.Description,
		Priority:        req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, gin.H{"sent": result.Success})
}

// SendTestEmail handles POST /notifications/test
func (h *NotificationHandler) SendTestEmail(c *gin.Context) {
	result, err := h.sendTestEmailUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, gin.H{"sent": result.Success})
}
