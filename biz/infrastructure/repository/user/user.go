package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	DisplayName  string             `bson:"display_name" json:"displayName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Blocked      bool               `bson:"blocked" json:"blocked"`
	TokenVersion int64              `bson:"token_version" json:"-"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	LastLogin    time.Time          `bson:"last_login,omitempty" json:"lastLogin"`
}
