package ticket

import (
	"reinkjet/internal/application/ticket/usecases"
	"reinkjet/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

type CreateTicketRequest struct {
	EquipmentSerial string `json:"equipment_serial" binding:"required,max=50"`
	ProblemType     string `json:"problem_type" binding:"required,max=50"`
	Description     string `json:"description" binding:"required"`
	Priority        string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
}

func (r *CreateTicketRequest) ToCommand(accountID uint, accountName, companyName string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		AccountID:       accountID,
		AccountName:     accountName,
		CompanyName:     companyName,
		EquipmentSerial: r.EquipmentSerial,
		ProblemType:     r.ProblemType,
		Description:     r.Description,
		Priority:        r.Priority,
	}
}

type ListTicketsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high critical"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (r *ListTicketsRequest) ToQuery(accountID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		AccountID: accountID,
		Status:    r.Status,
		Priority:  r.Priority,
		Page:      r.Page,
		PageSize:  r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	var req ListTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}
	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	req.Page, req.PageSize = pagination.Page, pagination.PageSize
	return &req, nil
}

type UpdateTicketRequest struct {
	Status     *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority   *string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssignedTo *string `json:"assigned_to" binding:"omitempty,max=120"`
	Resolution *string `json:"resolution"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, actorID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		ActorID:    actorID,
		Status:     r.Status,
		Priority:   r.Priority,
		AssignedTo: r.AssignedTo,
		Resolution: r.Resolution,
	}
}

type CloseTicketRequest struct {
	Rating *int `json:"rating" binding:"omitempty,min=1,max=5"`
}

type RateTicketRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}
