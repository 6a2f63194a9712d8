package user

import "github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"

// UserResponse represents user data in API responses
type UserResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	JoinDate     string  `json:"join_date"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		EmployeeID:   u.EmployeeID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Department:   u.Department,
		Designation:  u.Designation,
		Phone:        u.Phone,
		Address:      u.Address,
		JoinDate:     u.JoinDate.Format(validator.DateLayout),
		ProfileImage: u.ProfileImage,
	}
}

// ListEmployeesRequest carries the directory search query.
type ListEmployeesRequest struct {
	Query string `json:"q"`
}
