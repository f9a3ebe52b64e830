package dto

// ModerateJobRequest approves or rejects a posted job.
type ModerateJobRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type UserStats struct {
	Total      int64 `json:"total"`
	JobSeekers int64 `json:"job_seekers"`
	Employers  int64 `json:"employers"`
	Admins     int64 `json:"admins"`
	NewLast7d  int64 `json:"new_last_7_days"`
}

type JobStats struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"active"`
	Draft       int64 `json:"draft"`
	Closed      int64 `json:"closed"`
	Internships int64 `json:"internships"`
	NewLast7d   int64 `json:"new_last_7_days"`
}

type ApplicationStats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
	NewLast7d int64            `json:"new_last_7_days"`
}

type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// AdminStatsResponse is the dashboard snapshot.
type AdminStatsResponse struct {
	Users         UserStats        `json:"users"`
	Jobs          JobStats         `json:"jobs"`
	Applications  ApplicationStats `json:"applications"`
	TopCategories []CategoryStat   `json:"top_categories"`
}

type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int64           `json:"total"`
}
