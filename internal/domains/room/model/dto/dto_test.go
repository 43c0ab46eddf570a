package dto_test

import (
	"testing"

	"hms/internal/domains/room/model"
	"hms/internal/domains/room/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestAddRoomRequest_ToModel(t *testing.T) {
	req := dto.AddRoomRequest{Number: 101, Type: "Single"}

	assert.Equal(t, model.Room{Number: 101, Type: "Single", Available: true}, req.ToModel())
}

func TestListRoomsFilter_ToFilterGroup(t *testing.T) {
	available := true

	tests := []struct {
		name      string
		filter    dto.ListRoomsFilter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "no filters",
			filter:    dto.ListRoomsFilter{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "type only",
			filter:    dto.ListRoomsFilter{Type: "Double"},
			wantWhere: "(rooms.roomtype = :roomtype)",
			wantArgs:  map[string]any{"roomtype": "Double"},
		},
		{
			name:      "type and availability",
			filter:    dto.ListRoomsFilter{Type: "Single", Available: &available},
			wantWhere: "(rooms.roomtype = :roomtype AND rooms.isavailable = :isavailable)",
			wantArgs:  map[string]any{"roomtype": "Single", "isavailable": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tt.filter.ToFilterGroup()
			where, args := group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	var res dto.GetRoomsResponse

	res.FromModels([]model.Room{{Number: 101, Type: "Single", Available: true}, {Number: 102, Type: "Double"}}, 12, 10)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
	assert.False(t, res.Rooms[1].Available)
}
