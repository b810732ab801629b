package models

type User struct {
	ID        int     `json:"user_id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	IsAdmin   FlexInt `json:"is_admin"`
	CreatedAt string  `json:"created_at,omitempty"`
}

func (u User) Admin() bool {
	return u.IsAdmin != 0
}

type AuditLogEntry struct {
	ID             int     `json:"log_id"`
	UserID         int     `json:"user_id"`
	Username       string  `json:"username,omitempty"`
	ChangedBy      *int    `json:"changed_by,omitempty"`
	ChangedByName  string  `json:"changed_by_username,omitempty"`
	OldAdminStatus FlexInt `json:"old_admin_status"`
	NewAdminStatus FlexInt `json:"new_admin_status"`
	ChangeDate     string  `json:"change_date"`
}

type UserListResponse struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
	AdminCount int    `json:"admin_count"`
	UserCount  int    `json:"user_count"`
}
