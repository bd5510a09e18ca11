package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog merepresentasikan 1 dokumen jejak aktivitas di MongoDB
// (collection: audit_logs). Dicatat best-effort: gagal menulis audit
// tidak boleh menggagalkan operasi utamanya.
type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EntryID   string             `bson:"entryId" json:"entryId"`     // uuid, identitas entry lintas sistem
	Actor     string             `bson:"actor" json:"actor"`         // siapa yang melakukan (admin_id / voters_id)
	Action    string             `bson:"action" json:"action"`       // vote_cast / candidate_status_update / admin_created
	TargetID  string             `bson:"targetId" json:"targetId"`   // objek yang dikenai aksi (student_id, admin_id, dll)
	Detail    string             `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Daftar action yang dicatat ke audit trail.
const (
	AuditActionVoteCast              = "vote_cast"
	AuditActionCandidateStatusUpdate = "candidate_status_update"
	AuditActionAdminCreated          = "admin_created"
)
