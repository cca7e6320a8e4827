package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/pkg/rest"
	"github.com/asliq/akilli-garson/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore emulates the JSON store: flat collections of documents with
// query-parameter filtering, shallow PATCH merge and _page/_limit pagination.
type fakeStore struct {
	mu        sync.Mutex
	data      map[string][]map[string]any
	patches   map[string]int
	failPatch map[string]bool
	nextID    int
	srv       *httptest.Server
}

func newFakeStore(t *testing.T) *fakeStore {
	f := &fakeStore{
		data:      make(map[string][]map[string]any),
		patches:   make(map[string]int),
		failPatch: make(map[string]bool),
		nextID:    1,
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeStore) client() *rest.Client {
	return rest.NewClient(f.srv.URL, 2*time.Second, discardLogger())
}

func toDoc(v any) map[string]any {
	raw, _ := json.Marshal(v)
	var doc map[string]any
	json.Unmarshal(raw, &doc)
	return doc
}

func (f *fakeStore) seed(col string, v any) map[string]any {
	doc := toDoc(v)
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, _ := doc["id"].(string); id == "" {
		doc["id"] = strconv.Itoa(f.nextID)
		f.nextID++
	}
	f.data[col] = append(f.data[col], doc)
	return doc
}

// doc returns a decoded copy of one stored document, or nil.
func (f *fakeStore) doc(col, id string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.data[col] {
		if d["id"] == id {
			return toDoc(d)
		}
	}
	return nil
}

func (f *fakeStore) count(col string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data[col])
}

func (f *fakeStore) patchCount(col string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.patches[col]
}

func (f *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	col := parts[0]

	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			out := make([]map[string]any, 0)
			for _, d := range f.data[col] {
				if matches(d, r.URL.Query()) {
					out = append(out, d)
				}
			}
			w.Header().Set("X-Total-Count", strconv.Itoa(len(out)))
			out = paginate(out, r.URL.Query())
			json.NewEncoder(w).Encode(out)
		case http.MethodPost:
			var doc map[string]any
			json.NewDecoder(r.Body).Decode(&doc)
			if id, _ := doc["id"].(string); id == "" {
				doc["id"] = strconv.Itoa(f.nextID)
				f.nextID++
			}
			f.data[col] = append(f.data[col], doc)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(doc)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	id := parts[1]
	idx := -1
	for i, d := range f.data[col] {
		if d["id"] == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(f.data[col][idx])
	case http.MethodPatch:
		if f.failPatch[col] {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"injected"}`))
			return
		}
		var fields map[string]any
		json.NewDecoder(r.Body).Decode(&fields)
		for k, v := range fields {
			f.data[col][idx][k] = v
		}
		f.patches[col]++
		json.NewEncoder(w).Encode(f.data[col][idx])
	case http.MethodDelete:
		f.data[col] = append(f.data[col][:idx], f.data[col][idx+1:]...)
		w.Write([]byte(`{}`))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func matches(doc map[string]any, q map[string][]string) bool {
	for k, vs := range q {
		if strings.HasPrefix(k, "_") {
			continue
		}
		if fmt.Sprint(doc[k]) != vs[0] {
			return false
		}
	}
	return true
}

func paginate(docs []map[string]any, q map[string][]string) []map[string]any {
	limit, _ := strconv.Atoi(first(q, "_limit"))
	if limit <= 0 {
		return docs
	}
	page, _ := strconv.Atoi(first(q, "_page"))
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(docs) {
		return nil
	}
	end := start + limit
	if end > len(docs) {
		end = len(docs)
	}
	return docs[start:end]
}

func first(q map[string][]string, k string) string {
	if vs := q[k]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// env wires the full service stack against one fake store.
type env struct {
	store   *fakeStore
	cache   *cache.Store
	tables  *TableService
	orders  *OrderService
	kitchen *KitchenService
}

func newEnv(t *testing.T) *env {
	f := newFakeStore(t)
	api := f.client()

	c := cache.NewStore(discardLogger())
	t.Cleanup(c.Close)

	discounts := NewDiscountService(c, repository.NewDiscountRepository(api))
	orders := NewOrderService(c,
		repository.NewOrderRepository(api),
		repository.NewTableRepository(api),
		repository.NewMenuRepository(api),
		repository.NewKitchenRepository(api),
		discounts,
		discardLogger(),
	)
	kitchen := NewKitchenService(c, repository.NewKitchenRepository(api), orders, discardLogger())
	tables := NewTableService(c, repository.NewTableRepository(api))

	return &env{store: f, cache: c, tables: tables, orders: orders, kitchen: kitchen}
}
