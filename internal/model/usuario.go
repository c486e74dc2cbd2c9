package model

// Usuario stores system users with role-based access. Column names match the
// existing Users table so deployed databases keep working.
type Usuario struct {
	ID           uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Name         *string `gorm:"column:name"`
	LastName     *string `gorm:"column:lastName"`
	Phone        *string `gorm:"column:phone"`
	Hierarchy    *string `gorm:"column:hierarchy"`
	Username     string  `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string  `gorm:"column:password;not null"`
	Role         string  `gorm:"column:role;not null;default:user"`
}

// TableName keeps the existing table name.
func (Usuario) TableName() string { return "Users" }
