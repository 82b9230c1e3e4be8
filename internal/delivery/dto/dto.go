package dto

// UploadResult is the per-row outcome tally of one reconciliation
// batch. Skipped counts exact duplicates (idempotent no-ops), not
// failures.
type UploadResult struct {
	BatchID  string `json:"batch_id"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
	Errors   int    `json:"errors"`
}

// SkipResult names the slot a skip date landed in.
type SkipResult struct {
	Slot   int    `json:"slot"`
	Column string `json:"column"`
}
