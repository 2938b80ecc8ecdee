package users

// User is a spectator account. Accounts are provisioned out of band (seed
// data or an upstream identity system); this service never creates them.
type User struct {
	UserID  int64  `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name    string `gorm:"not null;size:255" json:"name"`
	Email   string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Contact string `gorm:"size:20" json:"contact"`
}

func (User) TableName() string {
	return "user"
}
