package model

// User is the shop visitor spending activity points.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	ActivityPoints int    `json:"activityPoints"`
}
