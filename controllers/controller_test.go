package controllers

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"journal-db-manager/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var loginIDPattern = regexp.MustCompile("login id: `(\\d+)`")

type harness struct {
	t    *testing.T
	db   *gorm.DB
	out  *bytes.Buffer
	ctrl *Controller
	sess *Session
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	out := &bytes.Buffer{}
	return &harness{t: t, db: db, out: out, ctrl: NewController(db, out), sess: &Session{}}
}

// run invokes a handler and returns what it printed.
func (h *harness) run(handler func(context.Context, *Session, []string), args ...string) string {
	h.t.Helper()
	h.out.Reset()
	handler(context.Background(), h.sess, args)
	return h.out.String()
}

// register runs a register command and returns the issued login id.
func (h *harness) register(args ...string) int {
	h.t.Helper()
	out := h.run(h.ctrl.Register, args...)
	m := loginIDPattern.FindStringSubmatch(out)
	if m == nil {
		h.t.Fatalf("register %v did not issue a login id:\n%s", args, out)
	}
	id, _ := strconv.Atoi(m[1])
	return id
}

func (h *harness) count(model interface{}, query string, args ...interface{}) int64 {
	h.t.Helper()
	var n int64
	if err := h.db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		h.t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func (h *harness) seedReviewAssignment(status models.ManuscriptStatus, reviewerID int) int {
	h.t.Helper()
	now := time.Now()
	m := models.Manuscript{Title: "Assigned", Status: status, AuthorID: 1, ICode: 7, DateReceived: now, StatusLastUpdated: now}
	if err := h.db.Create(&m).Error; err != nil {
		h.t.Fatalf("seed manuscript: %v", err)
	}
	if err := h.db.Create(&models.Review{ManuscriptID: m.ManuscriptID, ReviewerID: reviewerID, DateSent: &now}).Error; err != nil {
		h.t.Fatalf("seed review: %v", err)
	}
	return m.ManuscriptID
}

func assertContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, out)
	}
}
