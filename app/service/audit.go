package service

import (
	"context"
	"log"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"
)

// logAudit menulis satu entry jejak aktivitas secara fire-and-forget.
// Gagal menulis audit tidak boleh menggagalkan operasi utama: error hanya
// di-log lalu ditelan. Aman dipanggil dengan audit == nil (mis. di test).
func logAudit(audit repository.AuditRepository, actor, action, targetID, detail string) {
	if audit == nil {
		return
	}

	entry := &model.AuditLog{
		Actor:    actor,
		Action:   action,
		TargetID: targetID,
		Detail:   detail,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := audit.Log(ctx, entry); err != nil {
			log.Printf("[AUDIT] gagal menulis entry %s untuk %s: %v", action, targetID, err)
		}
	}()
}
