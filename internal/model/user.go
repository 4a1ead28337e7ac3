package model

type UserRole string

const (
	Teacher UserRole = "Teacher"
	Student UserRole = "Student"
	Other   UserRole = "Other"
)

// DefaultPfp 默认头像 删除用户时不会从存储中移除
const DefaultPfp = "defaults/pfps/default.png"

// swagger:model User
type User struct {
	PublicBase
	Email     string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username  string   `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string   `gorm:"size:150" json:"first_name"`
	LastName  string   `gorm:"size:150" json:"last_name"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	Role      UserRole `gorm:"size:255;not null" json:"role"`
	IsStaff   bool     `gorm:"default:false" json:"-"`
	Pfp       string   `gorm:"size:255;default:'defaults/pfps/default.png'" json:"pfp"`
}

func (User) TableName() string {
	return "users"
}
