package equipment

import (
	"time"

	"reinkjet/internal/application/equipment/usecases"
)

type ListEquipmentRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=active maintenance inactive"`
	Type     string `form:"type"`
	Location string `form:"location"`
}

func (r *ListEquipmentRequest) ToQuery(accountID uint) usecases.ListEquipmentQuery {
	return usecases.ListEquipmentQuery{
		AccountID: accountID,
		Status:    r.Status,
		Type:      r.Type,
		Location:  r.Location,
	}
}

type CreateEquipmentRequest struct {
	SerialNumber  string     `json:"serial_number" binding:"required,max=50"`
	Model         string     `json:"model" binding:"required,max=100"`
	Brand         string     `json:"brand" binding:"omitempty,max=50"`
	EquipmentType string     `json:"equipment_type" binding:"omitempty,max=50"`
	Location      string     `json:"location" binding:"omitempty,max=120"`
	Department    string     `json:"department" binding:"omitempty,max=120"`
	Status        string     `json:"status" binding:"omitempty,oneof=active maintenance inactive"`
	ContractStart *time.Time `json:"contract_start"`
	ContractEnd   *time.Time `json:"contract_end"`
	InitialBW     int        `json:"counter_initial_bw" binding:"omitempty,min=0"`
	CurrentBW     int        `json:"counter_current_bw" binding:"omitempty,min=0"`
	InitialColor  int        `json:"counter_initial_color" binding:"omitempty,min=0"`
	CurrentColor  int        `json:"counter_current_color" binding:"omitempty,min=0"`
}

func (r *CreateEquipmentRequest) ToCommand(accountID uint) usecases.CreateEquipmentCommand {
	return usecases.CreateEquipmentCommand{
		AccountID:     accountID,
		SerialNumber:  r.SerialNumber,
		Model:         r.Model,
		Brand:         r.Brand,
		EquipmentType: r.EquipmentType,
		Location:      r.Location,
		Department:    r.Department,
		Status:        r.Status,
		ContractStart: r.ContractStart,
		ContractEnd:   r.ContractEnd,
		InitialBW:     r.InitialBW,
		CurrentBW:     r.CurrentBW,
		InitialColor:  r.InitialColor,
		CurrentColor:  r.CurrentColor,
	}
}
