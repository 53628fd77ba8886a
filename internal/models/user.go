package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	gorm.Model

	Email        string         `gorm:"uniqueIndex;not null"`
	Login        string         `gorm:"not null"`
	PasswordHash string         `gorm:"not null"`
	Roles        datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Posts    []Post    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Comments []Comment `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}

// RolesJSON encodes a role list for the Roles column.
func RolesJSON(roles ...string) datatypes.JSON {
	data, _ := json.Marshal(roles)
	return datatypes.JSON(data)
}

func (u *User) RoleList() []string {
	var roles []string
	if err := json.Unmarshal(u.Roles, &roles); err != nil {
		return nil
	}
	return roles
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
