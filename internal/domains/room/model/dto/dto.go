package dto

import (
	"hms/internal/domains/room/model"
	"hms/shared"
	gDto "hms/shared/dto"
)

type AddRoomRequest struct {
	Number int    `json:"room_number" validate:"required,gt=0"`
	Type   string `json:"room_type"   validate:"required,max=50"`
}

func (r *AddRoomRequest) ToModel() model.Room {
	return model.Room{
		Number:    r.Number,
		Type:      r.Type,
		Available: true,
	}
}

type AllocateRoomRequest struct {
	Type string `json:"room_type" validate:"required,max=50"`
}

type AllocateRoomResponse struct {
	Number int `json:"room_number"`
}

// ListRoomsFilter narrows a room listing. Zero values match everything.
type ListRoomsFilter struct {
	Type      string
	Available *bool
}

func (f ListRoomsFilter) ToFilterGroup() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Type != "" {
		filter.Add(gDto.Filter{Field: model.FieldType, Value: f.Type, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Available != nil {
		filter.Add(gDto.Filter{Field: model.FieldAvailable, Value: *f.Available, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

type RoomResponse struct {
	Number    int    `json:"room_number"`
	Type      string `json:"room_type"`
	Available bool   `json:"is_available"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.Number = model.Number
	r.Type = model.Type
	r.Available = model.Available
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
