package department

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrcore/hr-management/internal"
	departmentDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/department"
	"github.com/hrcore/hr-management/internal/notifier"
)

func TestDepartment(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Department Module Suite")
}

type mockDepartmentRepository struct {
	departments   map[int64]*departmentDatamodel.Department
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockDepartmentRepository() *mockDepartmentRepository {
	return &mockDepartmentRepository{
		departments: make(map[int64]*departmentDatamodel.Department),
		nextID:      1,
	}
}

func (m *mockDepartmentRepository) Create(_ context.Context, dept *departmentDatamodel.Department) error {
	if m.returnError {
		return m.errorToReturn
	}
	dept.ID = m.nextID
	m.nextID++
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepository) GetByID(_ context.Context, id int64) (*departmentDatamodel.Department, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	return m.departments[id], nil
}

func (m *mockDepartmentRepository) GetAll(_ context.Context) ([]*departmentDatamodel.Department, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	all := make([]*departmentDatamodel.Department, 0, len(m.departments))
	for _, dept := range m.departments {
		all = append(all, dept)
	}
	return all, nil
}

func (m *mockDepartmentRepository) Update(_ context.Context, dept *departmentDatamodel.Department) error {
	if m.returnError {
		return m.errorToReturn
	}
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepository) Exists(_ context.Context, id int64) (bool, error) {
	if m.returnError {
		return false, m.errorToReturn
	}
	_, ok := m.departments[id]
	return ok, nil
}

var _ = ginkgo.Describe("DepartmentService", func() {
	var (
		service  *Service
		mockRepo *mockDepartmentRepository
		queue    *notifier.MemoryQueue
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockDepartmentRepository()
		queue = notifier.NewMemoryQueue()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		routes := map[string][]string{
			notifier.EventDepartmentCreated: {"dept-events"},
		}
		service = NewService(mockRepo, notifier.New(routes, queue, slogger), slogger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.Context("when the input is valid", func() {
			ginkgo.It("should persist the department with active status", func() {
				dto := CreateDepartmentDTO{Name: "Engineering", Description: "Builds things"}

				created, err := service.Create(context.Background(), dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(created.ID).To(gomega.Equal(int64(1)))
				gomega.Expect(created.Status).To(gomega.Equal(StatusActive))
			})

			ginkgo.It("should dispatch the creation event to the configured queue", func() {
				dto := CreateDepartmentDTO{Name: "Engineering", Description: "Builds things"}

				_, err := service.Create(context.Background(), dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(queue.Messages("dept-events")).To(gomega.HaveLen(1))
			})
		})

		ginkgo.Context("when required fields are missing", func() {
			ginkgo.It("should return field errors and not persist", func() {
				dto := CreateDepartmentDTO{Name: "", Description: ""}

				created, err := service.Create(context.Background(), dto)

				gomega.Expect(created).To(gomega.BeNil())
				appErr, ok := internal.AsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
				gomega.Expect(appErr.Fields).To(gomega.HaveKeyWithValue("name", []string{"The name field is required."}))
				gomega.Expect(appErr.Fields).To(gomega.HaveKeyWithValue("description", []string{"The description field is required."}))
				gomega.Expect(mockRepo.departments).To(gomega.BeEmpty())
				gomega.Expect(queue.Len()).To(gomega.Equal(0))
			})
		})

		ginkgo.Context("when the name exceeds the limit", func() {
			ginkgo.It("should reject names longer than 20 characters", func() {
				dto := CreateDepartmentDTO{Name: "An Extremely Long Department Name", Description: "desc"}

				_, err := service.Create(context.Background(), dto)

				appErr, ok := internal.AsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Fields["name"]).To(gomega.ContainElement("The name field must not be greater than 20 characters."))
			})
		})

		ginkgo.Context("when the repository fails", func() {
			ginkgo.It("should return an internal error and dispatch nothing", func() {
				mockRepo.returnError = true
				mockRepo.errorToReturn = errors.New("db down")
				dto := CreateDepartmentDTO{Name: "Engineering", Description: "desc"}

				_, err := service.Create(context.Background(), dto)

				appErr, ok := internal.AsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeInternal))
				gomega.Expect(queue.Len()).To(gomega.Equal(0))
			})
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Create(context.Background(), CreateDepartmentDTO{Name: "Engineering", Description: "desc"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should apply the new values", func() {
			updated, err := service.Update(context.Background(), 1, UpdateDepartmentDTO{Name: "Platform", Description: "infra"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Name).To(gomega.Equal("Platform"))
			gomega.Expect(updated.Description).To(gomega.Equal("infra"))
		})

		ginkgo.It("should return not found for an unknown id", func() {
			_, err := service.Update(context.Background(), 42, UpdateDepartmentDTO{Name: "Platform", Description: "infra"})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeNotFound))
		})
	})

	ginkgo.Describe("GetByID", func() {
		ginkgo.It("should return not found when the department does not exist", func() {
			_, err := service.GetByID(context.Background(), 99)

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeNotFound))
		})
	})
})
