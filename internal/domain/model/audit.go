package model

import "time"

// RequestLog is an HTTP request audit record persisted to MongoDB.
type RequestLog struct {
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	Level      string    `bson:"level" json:"level"`
	Message    string    `bson:"message" json:"message"`
	RequestID  string    `bson:"request_id" json:"request_id"`
	Method     string    `bson:"method" json:"method"`
	Path       string    `bson:"path" json:"path"`
	StatusCode int       `bson:"status_code" json:"status_code"`
	DurationMS int64     `bson:"duration_ms" json:"duration_ms"`
	IP         string    `bson:"ip" json:"ip"`
	UserAgent  string    `bson:"user_agent" json:"user_agent"`
}

// QuoteLog records one quote computation for later analysis. Cost is the
// decimal string the buyer was shown.
type QuoteLog struct {
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
	RequestID    string    `bson:"request_id" json:"request_id"`
	Variant      string    `bson:"variant" json:"variant"`
	Country      string    `bson:"country" json:"country"`
	PostalCode   string    `bson:"postal_code" json:"postal_code"`
	WeightGrams  float64   `bson:"weight_grams" json:"weight_grams"`
	Cost         string    `bson:"cost" json:"cost"`
	Label        string    `bson:"label" json:"label"`
	FreeShipping bool      `bson:"free_shipping" json:"free_shipping"`
	Outcome      string    `bson:"outcome" json:"outcome"`
}
