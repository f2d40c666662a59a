package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// AdminUser is a console account. Password always holds a bcrypt hash,
// never plaintext.
// Collection: adminuser
type AdminUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	LastLogin *time.Time         `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
