package model

// PredictRequest carries free text to classify without storing it.
type PredictRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// PredictResponse echoes the input with its predicted label.
type PredictResponse struct {
	Feedback         string  `json:"feedback"`
	PredictedEmotion string  `json:"predicted_emotion"`
	Confidence       float64 `json:"confidence"`
}
