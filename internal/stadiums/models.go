package stadiums

// Stadium is a physical venue. Its seat inventory lives in the seating
// table and is shared by every match hosted here.
type Stadium struct {
	StadiumID    int64  `gorm:"primaryKey;column:stadium_id" json:"stadium_id"`
	Name         string `gorm:"not null;size:255" json:"name"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:100" json:"state"`
	SeatCapacity int    `gorm:"not null" json:"seat_capacity"`
}

func (Stadium) TableName() string {
	return "stadium"
}
