package model

const RoleAdmin = "admin"

type User struct {
	UID  string `bson:"_id" json:"uid"`
	Role string `bson:"role" json:"role"`
}

// TokenInfo - данные вызывающего, извлекаемые из bearer-токена
type TokenInfo struct {
	UID string `json:"uid"`
}
