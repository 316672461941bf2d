package department

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/internal/transport"
)

type stubService struct {
	createResult *Department
	createErr    error
	getResult    *Department
	getErr       error
}

func (s *stubService) Create(_ context.Context, _ CreateDepartmentDTO) (*Department, error) {
	return s.createResult, s.createErr
}

func (s *stubService) Update(_ context.Context, _ int64, _ UpdateDepartmentDTO) (*Department, error) {
	return nil, nil
}

func (s *stubService) GetByID(_ context.Context, _ int64) (*Department, error) {
	return s.getResult, s.getErr
}

func (s *stubService) GetAll(_ context.Context) ([]*Department, error) {
	return nil, nil
}

var _ = ginkgo.Describe("DepartmentHandler", func() {
	var (
		handler *Handler
		stub    *stubService
		router  *chi.Mux
	)

	ginkgo.BeforeEach(func() {
		stub = &stubService{}
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = NewHandler(transport.NewBaseHandler(slogger), stub)

		router = chi.NewRouter()
		router.Post("/departments", handler.Create)
		router.Get("/departments/{id}", handler.Get)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should wrap the created department in the success envelope with 201", func() {
			stub.createResult = &Department{ID: 1, Name: "Engineering", Description: "desc", Status: StatusActive}
			body := bytes.NewBufferString(`{"name":"Engineering","description":"desc"}`)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/departments", body))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))

			var envelope struct {
				Success bool               `json:"success"`
				Data    DepartmentResponse `json:"data"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &envelope)).To(gomega.Succeed())
			gomega.Expect(envelope.Success).To(gomega.BeTrue())
			gomega.Expect(envelope.Data.Name).To(gomega.Equal("Engineering"))
		})

		ginkgo.It("should render validation failures as field errors with 422", func() {
			fields := internal.FieldErrors{}
			fields.Add("description", "The description field is required.")
			stub.createErr = internal.NewValidationError(fields)
			body := bytes.NewBufferString(`{"name":"Engineering"}`)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/departments", body))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnprocessableEntity))

			var envelope struct {
				Success bool                `json:"success"`
				Error   map[string][]string `json:"error"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &envelope)).To(gomega.Succeed())
			gomega.Expect(envelope.Success).To(gomega.BeFalse())
			gomega.Expect(envelope.Error).To(gomega.HaveKeyWithValue("description", []string{"The description field is required."}))
		})

		ginkgo.It("should reject a malformed body with 400", func() {
			body := bytes.NewBufferString(`{not json`)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/departments", body))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Get", func() {
		ginkgo.It("should return 404 with a message for an unknown department", func() {
			stub.getErr = internal.NewNotFoundError("Department not found")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments/42", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))

			var envelope struct {
				Success bool              `json:"success"`
				Error   map[string]string `json:"error"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &envelope)).To(gomega.Succeed())
			gomega.Expect(envelope.Error["message"]).To(gomega.Equal("Department not found"))
		})

		ginkgo.It("should return 400 for a non-numeric id", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments/abc", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})
})
