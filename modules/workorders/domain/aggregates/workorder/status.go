package workorder

import "strings"

// Bucket is the normalized workflow state of a work order. Raw status strings
// arrive in a mix of vocabularies (English, Portuguese, legacy spellings,
// empty); everything downstream of the boundary operates on buckets only.
type Bucket string

const (
	BucketPending    Bucket = "pending"
	BucketScheduled  Bucket = "scheduled"
	BucketInProgress Bucket = "in_progress"
	BucketCompleted  Bucket = "completed"
	BucketCancelled  Bucket = "cancelled"
)

// Buckets lists the workflow buckets in board order. Cancelled renders last.
func Buckets() []Bucket {
	return []Bucket{BucketPending, BucketScheduled, BucketInProgress, BucketCompleted, BucketCancelled}
}

// statusSynonyms folds the raw status vocabularies seen upstream into
// buckets. The table is the single place raw strings are interpreted;
// unknown or empty values land in pending so no record ever drops off the
// board.
var statusSynonyms = map[string]Bucket{
	"pending":      BucketPending,
	"pendente":     BucketPending,
	"scheduled":    BucketScheduled,
	"agendado":     BucketScheduled,
	"agendada":     BucketScheduled,
	"in_progress":  BucketInProgress,
	"em_andamento": BucketInProgress,
	"em andamento": BucketInProgress,
	"iniciado":     BucketInProgress,
	"completed":    BucketCompleted,
	"concluido":    BucketCompleted,
	"concluído":    BucketCompleted,
	"finalizado":   BucketCompleted,
	"cancelled":    BucketCancelled,
	"canceled":     BucketCancelled,
	"cancelado":    BucketCancelled,
	"cancelada":    BucketCancelled,
}

// NormalizeStatus maps a raw status string to its bucket.
func NormalizeStatus(raw string) Bucket {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if bucket, ok := statusSynonyms[normalized]; ok {
		return bucket
	}
	return BucketPending
}

func (b Bucket) IsTerminal() bool {
	return b == BucketCompleted || b == BucketCancelled
}
