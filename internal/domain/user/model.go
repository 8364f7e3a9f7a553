package user

import "time"

type Role string

const (
	RoleUser       Role = "user"
	RoleCSC        Role = "csc"
	RoleTechnician Role = "technician"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCSC, RoleTechnician:
		return true
	}
	return false
}

type User struct {
	UID         uint      `gorm:"primaryKey;column:u_id" json:"uid"`
	Username    string    `gorm:"size:50;not null;unique" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Email       string    `gorm:"size:100;not null" json:"email"`
	PhoneNumber *string   `gorm:"size:15" json:"phone_number,omitempty"`
	Role        Role      `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
