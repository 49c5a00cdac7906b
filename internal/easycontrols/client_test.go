package easycontrols

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/config"
)

// fakeUnit imitates the unit's web interface: a password login that sets a
// session, XML data pages and a write endpoint.
type fakeUnit struct {
	mu       sync.Mutex
	password string
	pages    map[string]string
	loggedIn bool
	logins   int
	written  map[string]string
	failPage string
}

func newFakeUnit() *fakeUnit {
	return &fakeUnit{
		password: "secret",
		pages: map[string]string{
			"werte8": `<PARAMETER><LANG>en</LANG><ID>v00104</ID><VA>12.5</VA><ID>v00102</ID><VA>1</VA></PARAMETER>`,
			"info3":  `<PARAMETER><LANG>en</LANG><ID>v00102</ID><VA>2</VA><ID>v00101</ID><VA>1</VA></PARAMETER>`,
			"broken": `<PARAMETER><ID>v00104`,
		},
		written: make(map[string]string),
	}
}

func (u *fakeUnit) expire() {
	u.mu.Lock()
	u.loggedIn = false
	u.mu.Unlock()
}

func (u *fakeUnit) loginCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.logins
}

func (u *fakeUnit) writtenValues() map[string]string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make(map[string]string, len(u.written))
	for k, v := range u.written {
		out[k] = v
	}
	return out
}

func (u *fakeUnit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case r.URL.Path == "/login.htm":
		fmt.Fprint(w, "<html>login</html>")
	case r.URL.Path == "/info.htm" && r.PostForm.Has(passwordLabel):
		if r.PostForm.Get(passwordLabel) != u.password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		u.loggedIn = true
		u.logins++
		fmt.Fprint(w, "<html>ok</html>")
	case !u.loggedIn:
		http.Redirect(w, r, "/login.htm", http.StatusFound)
	case r.URL.Path == "/info.htm":
		for k := range r.PostForm {
			u.written[k] = r.PostForm.Get(k)
		}
		fmt.Fprint(w, "<html>saved</html>")
	default:
		var page string
		if _, err := fmt.Sscanf(r.URL.Path, "/data/%s", &page); err != nil {
			http.NotFound(w, r)
			return
		}
		page = page[:len(page)-len(".xml")]
		if r.PostForm.Get("xml") != r.URL.Path {
			http.Error(w, "bad xml field", http.StatusBadRequest)
			return
		}
		if page == u.failPage {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		doc, ok := u.pages[page]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, doc)
	}
}

func newTestClient(t *testing.T, unit *fakeUnit, pages ...string) *Client {
	t.Helper()
	srv := httptest.NewServer(unit)
	t.Cleanup(srv.Close)

	c, err := New(config.DeviceConfig{
		URL:            srv.URL,
		Password:       "secret",
		RequestTimeout: 5,
		Pages:          pages,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNew_InvalidURL(t *testing.T) {
	if _, err := New(config.DeviceConfig{URL: "::not a url"}); !errors.Is(err, ErrRequestFailed) {
		t.Errorf("New() error = %v, want ErrRequestFailed", err)
	}
}

func TestFetch_MergesPages(t *testing.T) {
	unit := newFakeUnit()
	c := newTestClient(t, unit, "werte8", "info3")

	f, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if v, _ := f.Get("v00104"); v != "12.5" {
		t.Errorf("v00104 = %q", v)
	}
	if v, _ := f.Get("v00102"); v != "2" {
		t.Errorf("v00102 = %q, want later page to win", v)
	}
	if f.Language != "en" {
		t.Errorf("Language = %q", f.Language)
	}
	if n := unit.loginCount(); n != 1 {
		t.Errorf("logins = %d, want 1 (lazy login on first request)", n)
	}
}

func TestFetch_ReloginAfterExpiry(t *testing.T) {
	unit := newFakeUnit()
	c := newTestClient(t, unit, "werte8")
	ctx := context.Background()

	if _, err := c.Fetch(ctx); err != nil {
		t.Fatalf("first Fetch() error = %v", err)
	}
	unit.expire()
	if _, err := c.Fetch(ctx); err != nil {
		t.Fatalf("Fetch() after expiry error = %v", err)
	}
	if n := unit.loginCount(); n != 2 {
		t.Errorf("logins = %d, want 2", n)
	}
}

func TestFetch_WrongPassword(t *testing.T) {
	unit := newFakeUnit()
	unit.password = "other"
	c := newTestClient(t, unit, "werte8")

	_, err := c.Fetch(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Fetch() error = %v, want ErrUnauthorized", err)
	}
}

func TestFetch_MalformedPage(t *testing.T) {
	unit := newFakeUnit()
	c := newTestClient(t, unit, "werte8", "broken")

	_, err := c.Fetch(context.Background())
	if !errors.Is(err, frame.ErrMalformedDocument) {
		t.Errorf("Fetch() error = %v, want ErrMalformedDocument", err)
	}
}

func TestFetch_ServerError(t *testing.T) {
	unit := newFakeUnit()
	unit.failPage = "werte8"
	c := newTestClient(t, unit, "werte8")

	_, err := c.Fetch(context.Background())
	if !errors.Is(err, ErrRequestFailed) {
		t.Errorf("Fetch() error = %v, want ErrRequestFailed", err)
	}
}

func TestFetch_PageTooLarge(t *testing.T) {
	unit := newFakeUnit()
	unit.pages["huge"] = "<PARAMETER>" + strings.Repeat(" ", maxPageSize) + "</PARAMETER>"
	c := newTestClient(t, unit, "huge")

	_, err := c.Fetch(context.Background())
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("Fetch() error = %v, want ErrRequestFailed", err)
	}
	if errors.Is(err, frame.ErrMalformedDocument) {
		t.Errorf("Fetch() error = %v, oversized page reported as malformed", err)
	}
}

func TestFetchPage_InvalidName(t *testing.T) {
	c := newTestClient(t, newFakeUnit())
	for _, page := range []string{"", "../etc/passwd", "a?b"} {
		if _, err := c.FetchPage(context.Background(), page); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("FetchPage(%q) error = %v, want ErrInvalidPage", page, err)
		}
	}
}

func TestWrite(t *testing.T) {
	unit := newFakeUnit()
	c := newTestClient(t, unit)

	err := c.Write(context.Background(), map[string]string{"v00102": "3", "v00101": "1"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	written := unit.writtenValues()
	if written["v00102"] != "3" || written["v00101"] != "1" {
		t.Errorf("written = %v", written)
	}
	if _, leaked := written[passwordLabel]; leaked {
		t.Error("password posted together with the write")
	}
}

func TestWrite_Empty(t *testing.T) {
	c := newTestClient(t, newFakeUnit())
	if err := c.Write(context.Background(), nil); !errors.Is(err, ErrNothingToWrite) {
		t.Errorf("Write(nil) error = %v, want ErrNothingToWrite", err)
	}
}

func TestHealthCheck(t *testing.T) {
	c := newTestClient(t, newFakeUnit())
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	c := newTestClient(t, newFakeUnit(), "werte8")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}
