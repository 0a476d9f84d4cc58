package request

type CreateOrderRequest struct {
	SeatsIDs   []int64 `json:"seats_ids" validate:"required,min=1,dive,gt=0"`
	UserID     int64   `json:"user_id" validate:"required,gt=0"`
	SessionID  int64   `json:"session_id" validate:"required,gt=0"`
	TotalPrice int64   `json:"total_price" validate:"gte=0"`
	Info       string  `json:"info" validate:"required,min=10,max=50"`
}
