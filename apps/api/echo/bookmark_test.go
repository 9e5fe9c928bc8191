package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/edupathpro/edupath/core/bookmark"
	"github.com/edupathpro/edupath/core/catalog"
	"github.com/edupathpro/edupath/core/user"
	dummydb "github.com/edupathpro/edupath/storage/dummy"
)

func Test_bookmarkApi_bookmarks(t *testing.T) {
	app, db := setup(t)
	repo := dummydb.NewBookmarkRepository(db)

	student := createUser(t, db, "Hero", "hero@test.in", "", []string{user.RoleStudent}, true)
	other := createUser(t, db, "Other", "other@test.in", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	now := time.Now().UTC()
	older := bookmark.Bookmark{
		ID: "bm-1", UserID: student.ID, ItemID: "clg-nit", ItemType: catalog.ItemTypeCollege,
		ItemData:  map[string]interface{}{"name": "NIT Srinagar"},
		CreatedAt: now.Add(-time.Hour),
	}
	newer := bookmark.Bookmark{
		ID: "bm-2", UserID: student.ID, ItemID: "sch-pmsss", ItemType: catalog.ItemTypeScholarship,
		ItemData:  map[string]interface{}{"name": "PMSSS"},
		CreatedAt: now,
	}
	foreign := bookmark.Bookmark{
		ID: "bm-3", UserID: other.ID, ItemID: "crs-btech", ItemType: catalog.ItemTypeCourse,
		CreatedAt: now,
	}
	for _, bm := range []bookmark.Bookmark{older, newer, foreign} {
		if _, err := repo.CreateBookmark(context.Background(), bm); err != nil {
			t.Fatalf("CreateBookmark() failed: %v", err)
		}
	}

	t.Run("auth required", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/bookmarks")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("query owns only, newest first", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/bookmarks", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
		}
		var respData []bookmark.Bookmark
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if len(respData) != 2 {
			t.Fatalf("failed! len = %d; want 2", len(respData))
		}
		if respData[0].ID != newer.ID || respData[1].ID != older.ID {
			t.Errorf("failed! order = [%s %s]; want [%s %s]", respData[0].ID, respData[1].ID, newer.ID, older.ID)
		}
	})

	t.Run("create", func(t *testing.T) {
		body := marchallObj(t, bookmark.NewBookmark{
			ItemID:   "car-swe",
			ItemType: catalog.ItemTypeCareer,
			ItemData: map[string]interface{}{"title": "Software Engineer"},
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/bookmarks", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var respData bookmark.Bookmark
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if respData.ID == "" || respData.UserID != student.ID || respData.ItemID != "car-swe" {
			t.Errorf("failed! bookmark = %+v", respData)
		}
	})

	t.Run("create: duplicates allowed", func(t *testing.T) {
		body := marchallObj(t, bookmark.NewBookmark{ItemID: "car-swe", ItemType: catalog.ItemTypeCareer})
		req, rec := newAuthRequest(http.MethodPost, "/v1/bookmarks", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusCreated)
		}
		bms, err := repo.QueryBookmarksByUser(context.Background(), student.ID)
		if err != nil {
			t.Fatalf("QueryBookmarksByUser() failed: %v", err)
		}
		var n int
		for _, bm := range bms {
			if bm.ItemID == "car-swe" {
				n++
			}
		}
		if n != 2 {
			t.Errorf("failed! duplicate count = %d; want 2", n)
		}
	})

	t.Run("create: unknown item type", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"item_type": "must be one of: college, course, scholarship, career, resource"}),
		}
		body := marchallObj(t, bookmark.NewBookmark{ItemID: "lol", ItemType: "meme"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/bookmarks", token, body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("destroy: not the owner", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/bookmarks/"+foreign.ID, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("destroy", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/bookmarks/"+older.ID, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
		}
		if _, err := repo.GetBookmarkByID(context.Background(), older.ID); err != bookmark.ErrNotFound {
			t.Errorf("GetBookmarkByID() error = %v; want %v", err, bookmark.ErrNotFound)
		}
	})
}

func Test_bookmarkApi_applications(t *testing.T) {
	app, db := setup(t)
	repo := dummydb.NewBookmarkRepository(db)

	student := createUser(t, db, "Hero", "hero@test.in", "", []string{user.RoleStudent}, true)
	other := createUser(t, db, "Other", "other@test.in", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	var created bookmark.Application

	t.Run("apply", func(t *testing.T) {
		body := marchallObj(t, bookmark.NewApplication{
			ItemID:   "sch-pmsss",
			ItemType: catalog.ItemTypeScholarship,
			ItemData: map[string]interface{}{"name": "PMSSS", "amount": "₹1,25,000/year"},
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/applications", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if created.Status != bookmark.StatusApplied {
			t.Errorf("failed! status = %q; want %q", created.Status, bookmark.StatusApplied)
		}
		if created.UserID != student.ID || created.AppliedAt.IsZero() {
			t.Errorf("failed! application = %+v", created)
		}
	})

	t.Run("query", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/applications", token)
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t, created)}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("update status", func(t *testing.T) {
		body := marchallObj(t, bookmark.UpdateApplication{Status: "accepted"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/applications/"+created.ID, token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var respData bookmark.Application
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if respData.Status != "accepted" {
			t.Errorf("failed! status = %q; want %q", respData.Status, "accepted")
		}
	})

	t.Run("update: not the owner", func(t *testing.T) {
		body := marchallObj(t, bookmark.UpdateApplication{Status: "rejected"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/applications/"+created.ID, getToken(t, other), body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("withdraw: not the owner", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/applications/"+created.ID, getToken(t, other))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("withdraw", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/applications/"+created.ID, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
		}
		apps, err := repo.QueryApplicationsByUser(context.Background(), student.ID)
		if err != nil {
			t.Fatalf("QueryApplicationsByUser() failed: %v", err)
		}
		if len(apps) != 0 {
			t.Errorf("failed! len = %d; want 0", len(apps))
		}
	})
}
