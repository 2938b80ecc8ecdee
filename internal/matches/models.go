package matches

import "time"

// Match is a scheduled fixture at a stadium. The stadium association is
// what ties a match to its bookable seat inventory.
type Match struct {
	MatchID   int64     `gorm:"primaryKey;column:match_id" json:"match_id"`
	MatchDate time.Time `gorm:"type:date;not null" json:"match_date"`
	MatchTime string    `gorm:"not null;size:20" json:"match_time"`
	MatchName string    `gorm:"not null;size:255" json:"match_name"`
	StadiumID int64     `gorm:"not null;index" json:"stadium_id"`
}

func (Match) TableName() string {
	return "match"
}
