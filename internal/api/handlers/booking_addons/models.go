package booking_addons

// AddAddOnRequest HTTP request model
type AddAddOnRequest struct {
	Key string `json:"key"`
}
