package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteThenReadAndClearConsumesNotice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), NoticeSuccess("Profile saved"))

	read := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		read.AddCookie(cookie)
	}
	clearRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(clearRR, read)
	if !ok {
		t.Fatal("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess || notice.Message != "Profile saved" {
		t.Fatalf("notice = %+v", notice)
	}

	cleared := clearRR.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("expected expiring cookie, got %+v", cleared)
	}
}

func TestReadAndClearAbsentCookie(t *testing.T) {
	t.Parallel()

	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("ReadAndClear() ok = true, want false")
	}
}

func TestReadAndClearToleratesGarbage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%not-base64%%%"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), r); ok {
		t.Fatal("ReadAndClear() ok = true, want false for garbage cookie")
	}
}

func TestWriteDropsEmptyMessage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: KindInfo, Message: "   "})
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie for empty message")
	}
}

func TestWriteDropsUnknownKind(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: "celebration", Message: "hi"})
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie for unknown kind")
	}
}
