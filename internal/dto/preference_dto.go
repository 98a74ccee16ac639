package dto

// UpdatePreferencesRequest overwrites the user's training signals. A prompt
// in both lists counts as liked.
type UpdatePreferencesRequest struct {
	LikedPrompts    []string `json:"liked_prompts" validate:"max=18,dive,required"`
	DislikedPrompts []string `json:"disliked_prompts" validate:"max=18,dive,required"`
}

type PreferencesResponse struct {
	LikedPrompts    []string `json:"liked_prompts"`
	DislikedPrompts []string `json:"disliked_prompts"`
	Completeness    float64  `json:"completeness"` // rated share of the training prompts, 0..1
}
