package equipment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reinkjet/internal/application/equipment/usecases"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
	"reinkjet/internal/shared/utils"
)

type EquipmentHandler struct {
	listEquipmentUC usecases.ListEquipmentExecutor
	getEquipmentUC  usecases.GetEquipmentExecutor
	getStatsUC      usecases.GetEquipmentStatsExecutor
	listLocationsUC usecases.ListLocationsExecutor
	listTypesUC     usecases.ListTypesExecutor
	createUC        usecases.CreateEquipmentExecutor
	logger          logger.Interface
}

func NewEquipmentHandler(
	listEquipmentUC usecases.ListEquipmentExecutor,
	getEquipmentUC usecases.GetEquipmentExecutor,
	getStatsUC usecases.GetEquipmentStatsExecutor,
	listLocationsUC usecases.ListLocationsExecutor,
	listTypesUC usecases.ListTypesExecutor,
	createUC usecases.CreateEquipmentExecutor,
) *EquipmentHandler {
	return &EquipmentHandler{
		listEquipmentUC: listEquipmentUC,
		getEquipmentUC:  getEquipmentUC,
		getStatsUC:      getStatsUC,
		listLocationsUC: listLocationsUC,
		listTypesUC:     listTypesUC,
		createUC:        createUC,
		logger:          logger.NewLogger(),
	}
}

// ListEquipment handles GET /equipment
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	var req ListEquipmentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.listEquipmentUC.Execute(c.Request.Context(), req.ToQuery(accountID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetEquipment handles GET /equipment/:id
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	equipmentID, err := parseEquipmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.getEquipmentUC.Execute(c.Request.Context(), usecases.GetEquipmentQuery{
		AccountID:   accountID.(uint),
		EquipmentID: equipmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetStats handles GET /equipment/stats
func (h *EquipmentHandler) GetStats(c *gin.Context) {
	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetEquipmentStatsQuery{
		AccountID: accountID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListLocations handles GET /equipment/locations
func (h *EquipmentHandler) ListLocations(c *gin.Context) {
	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.listLocationsUC.Execute(c.Request.Context(), usecases.ListLocationsQuery{
		AccountID: accountID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTypes handles GET /equipment/types
func (h *EquipmentHandler) ListTypes(c *gin.Context) {
	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.listTypesUC.Execute(c.Request.Context(), usecases.ListTypesQuery{
		AccountID: accountID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateEquipment handles POST /equipment
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create equipment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountID, _ := c.Get(constants.ContextKeyAccountID)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(accountID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Equipment created successfully")
}

func parseEquipmentID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid equipment ID")
	}
	return uint(id), nil
}
