package model

import "rbb-weather/internal/domain/entity"

// LoadDataDTO is the LOAD_DATA payload sent by the widget host
type LoadDataDTO struct {
	ID   string `json:"id" validate:"required"`
	Days *int   `json:"days"`
}

// ToLoadConfig converts the payload, falling back to defaultDays when days is absent
func (dto LoadDataDTO) ToLoadConfig(defaultDays int) entity.LoadConfig {
	days := defaultDays
	if dto.Days != nil {
		days = *dto.Days
	}

	return entity.LoadConfig{LocationID: dto.ID, Days: days}.Normalize()
}
