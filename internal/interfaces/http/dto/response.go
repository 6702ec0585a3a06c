package dto

// Response represents the standard API envelope. Successful responses carry
// data, failed ones a message; list responses add pagination fields.
type Response struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data,omitempty"`
	Message     string      `json:"message,omitempty"`
	Code        string      `json:"code,omitempty"`
	Count       *int64      `json:"count,omitempty"`
	TotalPages  *int        `json:"totalPages,omitempty"`
	CurrentPage *int        `json:"currentPage,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewListResponse creates a success response with pagination fields
func NewListResponse(data interface{}, total int64, page, pageSize int) Response {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	if page < 1 {
		page = 1
	}
	return Response{
		Success:     true,
		Data:        data,
		Count:       &total,
		TotalPages:  &totalPages,
		CurrentPage: &page,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ListRequest represents common list/pagination request parameters
type ListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
}

// WithDefaults fills missing pagination values
func (r ListRequest) WithDefaults() ListRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = 20
	}
	return r
}
