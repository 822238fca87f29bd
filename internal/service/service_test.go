package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ceyizapp/ceyiz/internal/api"
	"github.com/ceyizapp/ceyiz/internal/model"
	"github.com/ceyizapp/ceyiz/internal/notify"
)

// newTestBackend serves the given handler and returns a client pointed at it.
func newTestBackend(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.New(server.URL, 5*time.Second, nil)
}

func okHandler(payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if payload == "" {
			fmt.Fprint(w, `{"success":true}`)
			return
		}
		fmt.Fprintf(w, `{"success":true,%s}`, payload)
	}
}

func failHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"success":false,"message":%q}`, message)
	}
}

func TestCategoryCreateNotifies(t *testing.T) {
	client := newTestBackend(t, okHandler(`"category":{"_id":"c1","name":"mutfak"}`))
	rec := &notify.Recorder{}
	svc := NewCategory(client, rec)

	category, err := svc.Create(context.Background(), "mutfak", model.IconUtensils)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if category.ID != "c1" {
		t.Errorf("expected category c1, got %q", category.ID)
	}
	if len(rec.Successes) != 1 || rec.Successes[0] != "category added" {
		t.Errorf("expected success notification, got %v", rec.Successes)
	}
	if svc.Loading() {
		t.Error("loading should be false after completion")
	}
	if svc.Err() != "" {
		t.Errorf("expected empty error, got %q", svc.Err())
	}
}

func TestCategoryCreateFailureNotifies(t *testing.T) {
	client := newTestBackend(t, failHandler("name taken"))
	rec := &notify.Recorder{}
	svc := NewCategory(client, rec)

	if _, err := svc.Create(context.Background(), "mutfak", model.IconUtensils); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.Errors) != 1 || !strings.Contains(rec.Errors[0], "name taken") {
		t.Errorf("expected error notification with server message, got %v", rec.Errors)
	}
	if svc.Err() == "" {
		t.Error("expected recorded error")
	}
}

func TestCategoryFetchIsQuiet(t *testing.T) {
	client := newTestBackend(t, failHandler("backend down"))
	rec := &notify.Recorder{}
	svc := NewCategory(client, rec)

	if _, err := svc.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.Errors) != 0 {
		t.Errorf("fetch failures should not be announced, got %v", rec.Errors)
	}
	if !strings.Contains(svc.Err(), "backend down") {
		t.Errorf("expected recorded error, got %q", svc.Err())
	}
}

func TestDowryUpdateSilentOption(t *testing.T) {
	client := newTestBackend(t, okHandler(""))
	rec := &notify.Recorder{}
	svc := NewDowry(client, rec)

	read := true
	err := svc.Update(context.Background(), "d1", api.DowryUpdate{IsRead: &read}, UpdateOptions{Notify: false})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(rec.Successes) != 0 {
		t.Errorf("silent update should not notify, got %v", rec.Successes)
	}
}

func TestDowryUpdateNotifyOption(t *testing.T) {
	client := newTestBackend(t, okHandler(""))
	rec := &notify.Recorder{}
	svc := NewDowry(client, rec)

	name := "new name"
	err := svc.Update(context.Background(), "d1", api.DowryUpdate{Name: &name}, UpdateOptions{Notify: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(rec.Successes) != 1 || rec.Successes[0] != "item updated" {
		t.Errorf("expected success notification, got %v", rec.Successes)
	}
}

func TestDowryUpdateSilentFailureStillReturnsError(t *testing.T) {
	client := newTestBackend(t, failHandler("no such item"))
	rec := &notify.Recorder{}
	svc := NewDowry(client, rec)

	read := false
	err := svc.Update(context.Background(), "d1", api.DowryUpdate{IsRead: &read}, UpdateOptions{Notify: false})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rec.Errors) != 0 {
		t.Errorf("silent update failure should not be announced, got %v", rec.Errors)
	}
	if !strings.Contains(svc.Err(), "no such item") {
		t.Errorf("expected recorded error, got %q", svc.Err())
	}
}

func TestDowryUpdateStatusFailureOnly(t *testing.T) {
	client := newTestBackend(t, okHandler(""))
	rec := &notify.Recorder{}
	svc := NewDowry(client, rec)

	if err := svc.UpdateStatus(context.Background(), "d1", model.StatusPurchased); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(rec.Successes) != 0 {
		t.Errorf("status success should stay quiet, got %v", rec.Successes)
	}

	failing := newTestBackend(t, failHandler("conflict"))
	svc = NewDowry(failing, rec)
	if err := svc.UpdateStatus(context.Background(), "d1", model.StatusPurchased); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.Errors) != 1 || !strings.Contains(rec.Errors[0], "failed to update status") {
		t.Errorf("expected status failure notification, got %v", rec.Errors)
	}
}

func TestDowryDeleteNotifies(t *testing.T) {
	client := newTestBackend(t, okHandler(""))
	rec := &notify.Recorder{}
	svc := NewDowry(client, rec)

	if err := svc.Delete(context.Background(), "d1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(rec.Successes) != 1 || rec.Successes[0] != "item deleted" {
		t.Errorf("expected deletion notification, got %v", rec.Successes)
	}
}

func TestDowryUploadRejectsBeforeNetwork(t *testing.T) {
	called := false
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	rec := &notify.Recorder{}
	svc := NewDowry(client, rec)

	if _, err := svc.UploadImage(context.Background(), "x.bin", []byte("not an image")); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("invalid data should never reach the server")
	}
	if len(rec.Errors) != 1 {
		t.Errorf("expected validation notification, got %v", rec.Errors)
	}
}

func TestDowryOCRSilentOnFailure(t *testing.T) {
	client := newTestBackend(t, failHandler("ocr backend down"))
	rec := &notify.Recorder{}
	svc := NewDowry(client, rec)

	if info := svc.OCR(context.Background(), "img1"); info != nil {
		t.Errorf("expected nil on failure, got %+v", info)
	}
	if len(rec.Errors) != 0 {
		t.Errorf("OCR failures should be silent, got %v", rec.Errors)
	}
}

func TestBookImportSummaryNotifications(t *testing.T) {
	client := newTestBackend(t, okHandler(`"data":{"summary":{"successful":5,"failed":0}}`))
	rec := &notify.Recorder{}
	svc := NewBook(client, rec)

	summary, err := svc.Import(context.Background(), "Orhan Pamuk - Kar", "c1")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if summary.Successful != 5 {
		t.Errorf("expected 5 successful, got %d", summary.Successful)
	}
	if len(rec.Successes) != 1 || rec.Successes[0] != "5 books added" {
		t.Errorf("expected success notification, got %v", rec.Successes)
	}

	partial := newTestBackend(t, okHandler(`"data":{"summary":{"successful":3,"failed":2}}`))
	svc = NewBook(partial, rec)
	if _, err := svc.Import(context.Background(), "lines", "c1"); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(rec.Warnings) != 1 || rec.Warnings[0] != "3 books added, 2 failed" {
		t.Errorf("expected partial-failure warning, got %v", rec.Warnings)
	}
}

func TestCategoryItemsFetchesFullSet(t *testing.T) {
	var gotQuery string
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"dowries":[{"_id":"d1","name":"Sofa"}]}`)
	})
	items := NewCategoryItems(NewDowry(client, &notify.Recorder{}), "c1")

	got, err := items.Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(got) != 1 || got[0].ID != "d1" {
		t.Errorf("unexpected items: %+v", got)
	}
	if !strings.Contains(gotQuery, "Category=c1") {
		t.Errorf("expected Category filter in query, got %q", gotQuery)
	}
	if !strings.Contains(gotQuery, "limit=1000") {
		t.Errorf("expected full-set limit in query, got %q", gotQuery)
	}
}

func TestCategoryItemsSetReadIsSilent(t *testing.T) {
	client := newTestBackend(t, okHandler(""))
	rec := &notify.Recorder{}
	items := NewCategoryItems(NewDowry(client, rec), "c1")

	if err := items.SetRead(context.Background(), "d1", true); err != nil {
		t.Fatalf("SetRead: %v", err)
	}
	if len(rec.Successes) != 0 || len(rec.Errors) != 0 {
		t.Errorf("read toggle should be silent, got %v / %v", rec.Successes, rec.Errors)
	}
}
