package model

// TrainingRecord is one historical expense as consumed by the classifier.
// Records exist only for the duration of a training pass; they are never
// persisted in this form.
type TrainingRecord struct {
	Vendor      string
	Description string
	Category    string
	Amount      float64
}
