package rental

type OpenRentalRequest struct {
	BikeID int64 `json:"bike_id" binding:"required"`
	UserID int64 `json:"user_id"`
	Hours  int   `json:"hours" binding:"required,gte=1"`
}
