package unit

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrcore/hr-management/internal"
	unitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/unit"
	"github.com/hrcore/hr-management/internal/notifier"
)

func TestUnit(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Unit Module Suite")
}

type mockUnitRepository struct {
	units  map[int64]*unitDatamodel.Unit
	nextID int64
}

func newMockUnitRepository() *mockUnitRepository {
	return &mockUnitRepository{
		units:  make(map[int64]*unitDatamodel.Unit),
		nextID: 1,
	}
}

func (m *mockUnitRepository) Create(_ context.Context, unit *unitDatamodel.Unit) error {
	unit.ID = m.nextID
	m.nextID++
	m.units[unit.ID] = unit
	return nil
}

func (m *mockUnitRepository) GetByID(_ context.Context, id int64) (*unitDatamodel.Unit, error) {
	return m.units[id], nil
}

func (m *mockUnitRepository) GetByName(_ context.Context, name string) (*unitDatamodel.Unit, error) {
	for _, unit := range m.units {
		if unit.Name == name {
			return unit, nil
		}
	}
	return nil, nil
}

func (m *mockUnitRepository) GetAll(_ context.Context) ([]*unitDatamodel.Unit, error) {
	all := make([]*unitDatamodel.Unit, 0, len(m.units))
	for _, unit := range m.units {
		all = append(all, unit)
	}
	return all, nil
}

func (m *mockUnitRepository) Update(_ context.Context, unit *unitDatamodel.Unit) error {
	m.units[unit.ID] = unit
	return nil
}

func (m *mockUnitRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.units[id]
	return ok, nil
}

type mockDepartmentChecker struct {
	existing map[int64]bool
}

func (m *mockDepartmentChecker) Exists(_ context.Context, id int64) (bool, error) {
	return m.existing[id], nil
}

var _ = ginkgo.Describe("UnitService", func() {
	var (
		service     *Service
		mockRepo    *mockUnitRepository
		departments *mockDepartmentChecker
		queue       *notifier.MemoryQueue
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUnitRepository()
		departments = &mockDepartmentChecker{existing: map[int64]bool{1: true}}
		queue = notifier.NewMemoryQueue()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		routes := map[string][]string{
			notifier.EventUnitCreated: {"unit-events"},
			notifier.EventUnitUpdated: {"unit-events"},
		}
		service = NewService(mockRepo, departments, notifier.New(routes, queue, slogger), slogger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should create a unit under an existing department", func() {
			created, err := service.Create(context.Background(), CreateUnitDTO{
				Name:         "Platform",
				Description:  "Infra unit",
				DepartmentID: 1,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.DepartmentID).To(gomega.Equal(int64(1)))
			gomega.Expect(queue.Messages("unit-events")).To(gomega.HaveLen(1))
		})

		ginkgo.It("should reject an unknown department reference", func() {
			_, err := service.Create(context.Background(), CreateUnitDTO{
				Name:         "Platform",
				Description:  "Infra unit",
				DepartmentID: 99,
			})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			gomega.Expect(appErr.Fields["department_id"]).To(gomega.ContainElement("The selected department_id is invalid."))
			gomega.Expect(queue.Len()).To(gomega.Equal(0))
		})

		ginkgo.It("should require all fields", func() {
			_, err := service.Create(context.Background(), CreateUnitDTO{})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Fields).To(gomega.HaveKey("name"))
			gomega.Expect(appErr.Fields).To(gomega.HaveKey("description"))
			gomega.Expect(appErr.Fields).To(gomega.HaveKey("department_id"))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Create(context.Background(), CreateUnitDTO{Name: "Platform", Description: "infra", DepartmentID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.Create(context.Background(), CreateUnitDTO{Name: "Payments", Description: "billing", DepartmentID: 1})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should apply new values and dispatch the update event", func() {
			queueBefore := queue.Len()

			updated, err := service.Update(context.Background(), 1, UpdateUnitDTO{
				Name:         "Core Platform",
				Description:  "infra",
				DepartmentID: 1,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Name).To(gomega.Equal("Core Platform"))
			gomega.Expect(queue.Len()).To(gomega.Equal(queueBefore + 1))
		})

		ginkgo.It("should reject a name already used by another unit", func() {
			_, err := service.Update(context.Background(), 1, UpdateUnitDTO{
				Name:         "Payments",
				Description:  "infra",
				DepartmentID: 1,
			})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Fields["name"]).To(gomega.ContainElement("The name has already been taken."))
		})

		ginkgo.It("should allow a unit to keep its own name", func() {
			_, err := service.Update(context.Background(), 1, UpdateUnitDTO{
				Name:         "Platform",
				Description:  "updated",
				DepartmentID: 1,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should return not found for an unknown unit", func() {
			_, err := service.Update(context.Background(), 42, UpdateUnitDTO{
				Name:         "Anything",
				Description:  "desc",
				DepartmentID: 1,
			})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeNotFound))
		})
	})
})
