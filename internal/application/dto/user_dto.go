package dto

import "time"

// AdminUserListQuery filtros del listado de usuarios.
type AdminUserListQuery struct {
	PageQuery
	Search    string
	Role      string
	Status    string // active | inactive | vacío
	DateFrom  *time.Time
	DateTo    *time.Time
	SortBy    string
	SortOrder string
}

// AdminUserResponse usuario con agregados de actividad.
type AdminUserResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Address        string     `json:"address"`
	IsActive       bool       `json:"is_active"`
	StatusReason   string     `json:"status_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	TotalRatings   int64      `json:"total_ratings"`
	AvgRating      float64    `json:"avg_rating"`
	StoresRated    int64      `json:"stores_rated"`
	StoresOwned    int64      `json:"stores_owned"`
	LastRatingDate *time.Time `json:"last_rating_date"`
}

// AdminUserFilters eco de los filtros aplicados.
type AdminUserFilters struct {
	Search    string `json:"search"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// AdminUserListResponse página del listado de usuarios.
type AdminUserListResponse struct {
	Users      []AdminUserResponse `json:"users"`
	Pagination AdminPagination     `json:"pagination"`
	Filters    AdminUserFilters    `json:"filters"`
}

// UserCountsResponse conteos globales de usuarios.
type UserCountsResponse struct {
	TotalUsers         int64 `json:"total_users"`
	ActiveUsers        int64 `json:"active_users"`
	NormalUsers        int64 `json:"normal_users"`
	StoreOwners        int64 `json:"store_owners"`
	AdminUsers         int64 `json:"admin_users"`
	NewUsersLast30Days int64 `json:"new_users_last_30_days"`
	NewUsersLast7Days  int64 `json:"new_users_last_7_days"`
}

// AdminCreateUserRequest alta de usuario por un admin (cualquier rol).
type AdminCreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=60,personname"`
	Email    string `json:"email" validate:"required,max=255,emailaddr"`
	Password string `json:"password" validate:"required,min=8,max=50"`
	Role     string `json:"role" validate:"omitempty,oneof=normal_user store_owner admin"`
	Address  string `json:"address" validate:"max=400"`
}

func (AdminCreateUserRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name":     "Name must be 2-60 characters and contain only letters, spaces, hyphens, and apostrophes",
		"email":    "Please provide a valid email address",
		"password": "Password must be between 8 and 50 characters",
		"role":     "Invalid role",
		"address":  "Address must not exceed 400 characters",
	}
}

// AdminUpdateUserRequest actualización parcial de un usuario.
type AdminUpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=60,personname"`
	Email    *string `json:"email" validate:"omitempty,max=255,emailaddr"`
	Role     *string `json:"role" validate:"omitempty,oneof=normal_user store_owner admin"`
	Address  *string `json:"address" validate:"omitempty,max=400"`
	IsActive *bool   `json:"is_active"`
}

func (AdminUpdateUserRequest) ValidationMessages() map[string]string {
	return AdminCreateUserRequest{}.ValidationMessages()
}

// DeleteUserResponse avisos sobre lo borrado en cascada.
type DeleteUserResponse struct {
	Warnings []string `json:"warnings,omitempty"`
}

// BulkUsersRequest activación o desactivación masiva.
type BulkUsersRequest struct {
	UserIDs   []int64 `json:"userIds" validate:"required,min=1,dive,gt=0"`
	Operation string  `json:"operation" validate:"required,oneof=activate deactivate"`
	Reason    string  `json:"reason" validate:"max=500"`
}

func (BulkUsersRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"userIds":   "User IDs array is required",
		"operation": "Invalid operation. Must be activate or deactivate",
		"reason":    "Reason must not exceed 500 characters",
	}
}

// BulkUsersResponse filas afectadas.
type BulkUsersResponse struct {
	AffectedUsers int64 `json:"affectedUsers"`
}
