package models

// VerificationResult is one entry of the append-only forensic verification log.
type VerificationResult struct {
	ID          string   `json:"id"`
	Timestamp   int64    `json:"timestamp"` // unix millis
	FileName    string   `json:"fileName"`
	IsAuthentic bool     `json:"isAuthentic"`
	Confidence  float64  `json:"confidence"` // 0..1
	Analysis    string   `json:"analysis"`
	Flags       []string `json:"flags"`
}

// NewVerification is a verdict bound to the file it was produced for.
type NewVerification struct {
	FileName string
	Verdict  Verdict
}
