package assign_groomer

// AssignGroomerRequest HTTP request model.
// Без groomerId грумер выбирается автоматически.
type AssignGroomerRequest struct {
	GroomerID *string `json:"groomerId,omitempty"`
}
