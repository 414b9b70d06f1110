package booking_media

// AttachMediaRequest HTTP request model.
// Ссылки на фото до и после, любое поле можно опустить.
type AttachMediaRequest struct {
	BeforeMedia *string `json:"beforeMedia,omitempty"`
	AfterMedia  *string `json:"afterMedia,omitempty"`
}

// SetFeaturedRequest HTTP request model
type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
}
