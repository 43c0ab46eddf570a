package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldNumber    = "roomnumber"
	FieldType      = "roomtype"
	FieldAvailable = "isavailable"
)

type Room struct {
	Number    int    `db:"roomnumber"`
	Type      string `db:"roomtype"`
	Available bool   `db:"isavailable"`
}
