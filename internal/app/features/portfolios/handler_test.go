package portfolios_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/features/portfolios"
	portfoliosvc "github.com/dalemusser/mentorhub/internal/app/services/portfolio"
	portfoliostore "github.com/dalemusser/mentorhub/internal/app/store/portfolios"
	userstore "github.com/dalemusser/mentorhub/internal/app/store/users"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := portfoliostore.New(db)
	svc := portfoliosvc.New(store, userstore.New(db), zap.NewNop())
	h := portfolios.NewHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Mount("/api/portfolios", portfolios.Routes(h))
	return r, testutil.NewFixtures(t, db)
}

func TestCreateAndFetch(t *testing.T) {
	r, _ := newRouter(t)

	body := `{
		"owner_id": "` + primitive.NewObjectID().Hex() + `",
		"nick_name": "dev-kim",
		"name": "Kim",
		"title": "Backend mentoring",
		"description": "servers",
		"position": ["backend"],
		"status": "active"
	}`
	req := httptest.NewRequest("POST", "/api/portfolios/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d, body %s", rec.Code, rec.Body.String())
	}

	var created models.Portfolio
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("parse create response: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("response should carry the assigned id")
	}

	req = httptest.NewRequest("GET", "/api/portfolios/"+created.ID.Hex(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get: got %d, body %s", rec.Code, rec.Body.String())
	}
	var fetched models.Portfolio
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("parse get response: %v", err)
	}
	if fetched.Title != "Backend mentoring" {
		t.Errorf("title: got %q", fetched.Title)
	}
}

func TestCreateIncompletePayloadIs400(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest("POST", "/api/portfolios/", strings.NewReader(`{"title":"only a title"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	var resp struct {
		Fields []string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(resp.Fields) == 0 {
		t.Error("validation reply should name the missing fields")
	}
}

func TestGetUnknownIDIs404(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest("GET", "/api/portfolios/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
}

func TestGetMalformedIDIs400(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest("GET", "/api/portfolios/not-an-id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", rec.Code)
	}
}

func TestListReportsTotalCount(t *testing.T) {
	r, fx := newRouter(t)
	ctx := testutil.TestContext(t)

	for i := 0; i < 3; i++ {
		fx.CreatePortfolio(ctx, primitive.NewObjectID(), "list-"+primitive.NewObjectID().Hex(), "backend")
	}

	req := httptest.NewRequest("GET", "/api/portfolios/?limit=2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Items      []models.Portfolio `json:"items"`
		TotalCount int64              `json:"total_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Errorf("page size: got %d, want 2", len(resp.Items))
	}
	if resp.TotalCount != 3 {
		t.Errorf("total_count: got %d, want 3", resp.TotalCount)
	}
}
